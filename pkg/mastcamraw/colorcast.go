package mastcamraw

// Gains holds static per-channel multiplicative corrections.
type Gains struct {
	R, G, B float64
}

// DefaultGains counters the blue-heavy, red-deficient cast of raw
// Mastcam EDR output.
var DefaultGains = Gains{R: 1.10, G: 1.00, B: 0.85}

// CorrectCast multiplies each channel by its configured gain in place.
// The gains come from configuration, never from image content.
func CorrectCast(p *RGBRaster, gains Gains) {
	for i := 0; i < len(p.Pix); i += 3 {
		p.Pix[i] *= gains.R
		p.Pix[i+1] *= gains.G
		p.Pix[i+2] *= gains.B
	}
}
