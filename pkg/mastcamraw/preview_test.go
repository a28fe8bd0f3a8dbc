package mastcamraw

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreviewScalesProportionally(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	dst := RenderPreview(src, 40)
	assert.Equal(t, 40, dst.Bounds().Dx())
	assert.Equal(t, 20, dst.Bounds().Dy())

	tall := image.NewRGBA(image.Rect(0, 0, 400, 1))
	dst = RenderPreview(tall, 40)
	assert.Equal(t, 1, dst.Bounds().Dy(), "height never collapses below one row")
}

func TestWritePreviewJPEG(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "frame_thumb.jpg")
	require.NoError(t, WritePreviewJPEG(path, src, 32))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}
