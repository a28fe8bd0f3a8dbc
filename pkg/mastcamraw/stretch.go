package mastcamraw

// Output range of the stretch stage; the pipeline emits 8-bit rasters.
const (
	stretchFloor   = 0.0
	stretchCeiling = 255.0
)

// Stretch remaps intensities in place so that the value at lowPct maps to
// the output floor and the value at highPct maps to the ceiling, clamping
// everything beyond them. Percentiles are computed per channel, keeping
// the channel balance established by the earlier gray-world stage. This
// is the only stage that clamps into the output bit depth.
//
// A flat channel (low == high) passes through clamped, which keeps it
// constant instead of dividing by zero.
func Stretch(p *RGBRaster, lowPct, highPct float64) {
	for ch := ChannelRed; ch <= ChannelBlue; ch++ {
		low, high := channelPercentiles(p, ch, lowPct, highPct)
		span := high - low
		for i := int(ch); i < len(p.Pix); i += 3 {
			v := p.Pix[i]
			if span > 0 {
				v = (v - low) * stretchCeiling / span
			}
			if v < stretchFloor {
				v = stretchFloor
			} else if v > stretchCeiling {
				v = stretchCeiling
			}
			p.Pix[i] = v
		}
	}
}
