//go:build !purego && !js

package main

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// saveImage writes the clamped 8-bit raster as PNG through OpenCV.
// IMWrite expects BGR channel order.
func saveImage(path string, img *image.RGBA) error {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	bgr := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := img.PixOffset(x, y)
			di := (y*w + x) * 3
			bgr[di] = img.Pix[si+2]
			bgr[di+1] = img.Pix[si+1]
			bgr[di+2] = img.Pix[si]
		}
	}

	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, bgr)
	if err != nil {
		return fmt.Errorf("building output mat: %w", err)
	}
	defer mat.Close()

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("could not write image: %s", path)
	}
	return nil
}
