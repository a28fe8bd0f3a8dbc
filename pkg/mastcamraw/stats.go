package mastcamraw

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ChannelStatistics is an ephemeral per-image aggregate computed fresh
// for each raster; nothing here is shared across images.
type ChannelStatistics struct {
	Mean [3]float64
}

// ComputeChannelStatistics computes the per-channel arithmetic means.
func ComputeChannelStatistics(p *RGBRaster) ChannelStatistics {
	var s ChannelStatistics
	for ch := ChannelRed; ch <= ChannelBlue; ch++ {
		s.Mean[ch] = stat.Mean(p.ChannelValues(ch), nil)
	}
	return s
}

// channelPercentiles returns the values at the low and high percentiles
// (0..100) of one channel's pixel-value distribution.
func channelPercentiles(p *RGBRaster, ch Channel, lowPct, highPct float64) (low, high float64) {
	values := p.ChannelValues(ch)
	sort.Float64s(values)
	low = stat.Quantile(lowPct/100, stat.Empirical, values, nil)
	high = stat.Quantile(highPct/100, stat.Empirical, values, nil)
	return low, high
}
