package mastcamraw

// WhiteBalance applies gray-world white balance in place: each channel is
// rescaled so its mean moves to the mean of the three channel means,
// assuming the scene averages to neutral gray. A fully black channel
// (zero mean) keeps a gain of 1 instead of producing an infinite scale.
// Values are not clamped; that happens at the contrast stretch.
func WhiteBalance(p *RGBRaster) {
	stats := ComputeChannelStatistics(p)
	target := (stats.Mean[ChannelRed] + stats.Mean[ChannelGreen] + stats.Mean[ChannelBlue]) / 3

	var gain [3]float64
	for ch := ChannelRed; ch <= ChannelBlue; ch++ {
		if stats.Mean[ch] > 0 {
			gain[ch] = target / stats.Mean[ch]
		} else {
			gain[ch] = 1.0
		}
	}

	for i := 0; i < len(p.Pix); i += 3 {
		p.Pix[i] *= gain[ChannelRed]
		p.Pix[i+1] *= gain[ChannelGreen]
		p.Pix[i+2] *= gain[ChannelBlue]
	}
}
