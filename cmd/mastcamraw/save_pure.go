//go:build purego || js

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// saveImage writes the clamped 8-bit raster as PNG with the stdlib encoder.
func saveImage(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
