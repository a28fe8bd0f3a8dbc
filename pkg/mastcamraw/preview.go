package mastcamraw

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"golang.org/x/image/draw"
)

const previewJPEGQuality = 90

// RenderPreview scales an image to the target width at proportional
// height, for quick browsing of processed frames.
func RenderPreview(src image.Image, targetWidth int) *image.RGBA {
	b := src.Bounds()
	scale := float64(targetWidth) / float64(b.Dx())
	h := int(float64(b.Dy()) * scale)
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WritePreviewJPEG renders a scaled preview and writes it as a JPEG file.
func WritePreviewJPEG(path string, src image.Image, targetWidth int) error {
	preview := RenderPreview(src, targetWidth)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview file: %w", err)
	}
	defer f.Close()

	return jpeg.Encode(f, preview, &jpeg.Options{Quality: previewJPEGQuality})
}
