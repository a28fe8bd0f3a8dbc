package mastcamraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectCast(t *testing.T) {
	t.Parallel()

	p := NewRGBRaster(5, 5)
	for i := 0; i < len(p.Pix); i += 3 {
		p.Pix[i] = 100
		p.Pix[i+1] = 100
		p.Pix[i+2] = 100
	}

	CorrectCast(p, DefaultGains)

	r, g, b := p.At(2, 3)
	assert.InDelta(t, 110.0, r, 1e-9)
	assert.InDelta(t, 100.0, g, 1e-9)
	assert.InDelta(t, 85.0, b, 1e-9)
}

func TestCorrectCastUnityGainsLeaveRasterUnchanged(t *testing.T) {
	t.Parallel()

	p := NewRGBRaster(5, 5)
	for i := range p.Pix {
		p.Pix[i] = float64(i)
	}
	CorrectCast(p, Gains{R: 1, G: 1, B: 1})

	for i := range p.Pix {
		assert.Equal(t, float64(i), p.Pix[i])
	}
}
