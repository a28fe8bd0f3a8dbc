package mastcamraw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMosaic(t *testing.T) {
	t.Parallel()

	t.Run("reads samples at offset", func(t *testing.T) {
		t.Parallel()
		const offset, width, height = 16, 6, 5

		payload := make([]byte, offset+width*height)
		for i := 0; i < width*height; i++ {
			payload[offset+i] = byte(i + 1)
		}
		path := filepath.Join(t.TempDir(), "frame.IMG")
		require.NoError(t, os.WriteFile(path, payload, 0o644))

		frame, err := ReadMosaic(path, offset, width, height)
		require.NoError(t, err)
		assert.Equal(t, width, frame.Width)
		assert.Equal(t, height, frame.Height)
		assert.Equal(t, 8, frame.BitDepth)
		assert.Equal(t, uint16(1), frame.Pix[0])
		assert.Equal(t, uint16(width*height), frame.Pix[width*height-1])
		assert.Equal(t, 255.0, frame.MaxValue())
	})

	t.Run("short file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "short.IMG")
		require.NoError(t, os.WriteFile(path, make([]byte, 10), 0o644))

		_, err := ReadMosaic(path, 0, 6, 5)
		assert.ErrorContains(t, err, "expected 30 bytes")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ReadMosaic(filepath.Join(t.TempDir(), "nope.IMG"), 0, 6, 5)
		assert.Error(t, err)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "frame.IMG")
		require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

		_, err := ReadMosaic(path, 0, 0, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		_, err = ReadMosaic(path, 0, 6, -1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestNewMosaicFrame(t *testing.T) {
	t.Parallel()

	frame, err := NewMosaicFrame([]byte{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3, 4, 5, 6}, frame.Pix)

	_, err = NewMosaicFrame([]byte{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
