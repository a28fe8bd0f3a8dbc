package mastcamraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStretchUniformRamp(t *testing.T) {
	t.Parallel()

	// 2000 pixels uniformly covering [0, 1000] on every channel.
	const width, height = 100, 20
	p := NewRGBRaster(width, height)
	n := width * height
	for i := 0; i < n; i++ {
		v := float64(i) * 1000 / float64(n-1)
		p.Pix[3*i] = v
		p.Pix[3*i+1] = v
		p.Pix[3*i+2] = v
	}

	Stretch(p, 0.5, 99.5)

	// Values beyond the percentile pair clamp to floor and ceiling.
	assert.Equal(t, 0.0, p.Pix[0])
	assert.Equal(t, 255.0, p.Pix[3*(n-1)])

	// The 0.5th/99.5th percentile values sit near 5 and 995; the ramp
	// midpoint lands close to mid-range.
	mid := p.Pix[3*(n/2)]
	assert.InDelta(t, 127.5, mid, 2.0)

	// Monotone over the ramp.
	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, p.Pix[3*i], p.Pix[3*(i-1)])
	}
}

func TestStretchFlatChannelStaysConstant(t *testing.T) {
	t.Parallel()

	t.Run("in-range value passes through", func(t *testing.T) {
		t.Parallel()
		p := NewRGBRaster(6, 6)
		for i := range p.Pix {
			p.Pix[i] = 128
		}
		Stretch(p, 0.5, 99.5)
		for i := range p.Pix {
			assert.Equal(t, 128.0, p.Pix[i])
		}
	})

	t.Run("out-of-range value clamps to a constant", func(t *testing.T) {
		t.Parallel()
		p := NewRGBRaster(6, 6)
		for i := range p.Pix {
			p.Pix[i] = 300
		}
		Stretch(p, 0.5, 99.5)
		for i := range p.Pix {
			assert.Equal(t, 255.0, p.Pix[i])
		}
	})
}

func TestStretchChannelsIndependently(t *testing.T) {
	t.Parallel()

	// Red spans [0, 100], green is flat; stretching red to the full
	// output range must not disturb green.
	const width, height = 10, 10
	p := NewRGBRaster(width, height)
	n := width * height
	for i := 0; i < n; i++ {
		p.Pix[3*i] = float64(i) * 100 / float64(n-1)
		p.Pix[3*i+1] = 42
		p.Pix[3*i+2] = 0
	}

	Stretch(p, 0, 100)

	assert.Equal(t, 0.0, p.Pix[0])
	assert.Equal(t, 255.0, p.Pix[3*(n-1)])
	for i := 0; i < n; i++ {
		assert.Equal(t, 42.0, p.Pix[3*i+1])
	}
}
