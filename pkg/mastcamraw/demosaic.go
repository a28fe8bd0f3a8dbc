package mastcamraw

import (
	"fmt"
	"math"
)

// minDemosaicSize is the smallest frame edge the 5x5 VNG window accepts.
const minDemosaicSize = 5

// Gradient admission threshold: a direction participates when its
// gradient is at most k1*gmin + k2*(gmax-gmin).
const (
	vngThresholdK1 = 1.5
	vngThresholdK2 = 0.5
)

// The eight candidate interpolation directions, as (dRow, dCol) unit
// steps: N, NE, E, SE, S, SW, W, NW. Stepping two units along any of
// them lands on the same CFA cell position, so second-ring samples
// always share the centre pixel's channel.
var vngDirections = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// DemosaicVNG reconstructs a full RGB raster from a Bayer mosaic using
// Variable Number of Gradients interpolation.
//
// For every pixel, each direction's gradient is the sum of the absolute
// colour differences between same-channel samples straddling the pixel
// along that direction. Directions whose gradient stays under an adaptive
// threshold (relative to the smoothest direction found at that pixel)
// contribute inverse-gradient-weighted channel sums; the two missing
// channels are then estimated as the centre sample plus the difference
// between the admitted mean of the missing channel and the admitted mean
// of the centre's own channel. Directions crossing a strong edge are
// excluded, so edges are not blurred across colour boundaries.
//
// The directly sampled channel at each position is preserved exactly.
// Border pixels use the reduced set of directions whose samples stay in
// bounds. No clamping happens here; values stay in the source units.
func DemosaicVNG(frame *MosaicFrame, cfa CanonicalCFA) (*RGBRaster, error) {
	w, h := frame.Width, frame.Height
	if w < minDemosaicSize || h < minDemosaicSize {
		return nil, fmt.Errorf("%w: %dx%d frame below minimum %dx%d window",
			ErrInvalidDimensions, w, h, minDemosaicSize, minDemosaicSize)
	}
	if len(frame.Pix) != w*h {
		return nil, fmt.Errorf("%w: %d samples for %dx%d frame",
			ErrInvalidDimensions, len(frame.Pix), w, h)
	}

	data := make([]float64, len(frame.Pix))
	for i, s := range frame.Pix {
		data[i] = float64(s)
	}

	out := NewRGBRaster(w, h)
	in := func(row, col int) bool {
		return row >= 0 && row < h && col >= 0 && col < w
	}
	px := func(row, col int) float64 {
		return data[row*w+col]
	}

	var (
		grad  [8]float64
		avail [8]bool
	)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			centre := px(row, col)
			centreCh := cfa.At(row, col)

			// Directional gradients over same-channel pairs.
			gmin := math.Inf(1)
			gmax := math.Inf(-1)
			for d, dir := range vngDirections {
				dr, dc := dir[0], dir[1]
				avail[d] = in(row+dr, col+dc)
				if !avail[d] {
					continue
				}
				g := 0.0
				if in(row-dr, col-dc) {
					g += math.Abs(px(row+dr, col+dc) - px(row-dr, col-dc))
				}
				if in(row+2*dr, col+2*dc) {
					g += math.Abs(px(row+2*dr, col+2*dc) - centre)
				}
				grad[d] = g
				if g < gmin {
					gmin = g
				}
				if g > gmax {
					gmax = g
				}
			}
			threshold := vngThresholdK1*gmin + vngThresholdK2*(gmax-gmin)

			// Weighted channel sums over the admitted directions.
			var sum, wsum [3]float64
			for d, dir := range vngDirections {
				if !avail[d] || grad[d] > threshold {
					continue
				}
				dr, dc := dir[0], dir[1]
				weight := 1.0 / (1.0 + grad[d])

				ch := cfa.At(row+dr, col+dc)
				sum[ch] += weight * px(row+dr, col+dc)
				wsum[ch] += weight
				if in(row+2*dr, col+2*dc) {
					sum[centreCh] += weight * px(row+2*dr, col+2*dc)
					wsum[centreCh] += weight
				}
			}

			var rgb [3]float64
			rgb[centreCh] = centre
			for ch := ChannelRed; ch <= ChannelBlue; ch++ {
				if ch == centreCh {
					continue
				}
				switch {
				case wsum[ch] > 0 && wsum[centreCh] > 0:
					rgb[ch] = centre + sum[ch]/wsum[ch] - sum[centreCh]/wsum[centreCh]
				case wsum[ch] > 0:
					rgb[ch] = sum[ch] / wsum[ch]
				default:
					// Every direction carrying this channel crossed an
					// edge; fall back to the plain neighbour average.
					rgb[ch] = neighbourAverage(cfa, data, w, h, row, col, ch)
				}
			}
			out.Set(row, col, rgb[ChannelRed], rgb[ChannelGreen], rgb[ChannelBlue])
		}
	}
	return out, nil
}

// neighbourAverage averages the in-bounds first-ring samples of the
// requested channel around (row, col). The 2x2 unit cell guarantees at
// least one such neighbour exists for any missing channel.
func neighbourAverage(cfa CanonicalCFA, data []float64, w, h, row, col int, ch Channel) float64 {
	sum, n := 0.0, 0
	for _, dir := range vngDirections {
		r, c := row+dir[0], col+dir[1]
		if r < 0 || r >= h || c < 0 || c >= w {
			continue
		}
		if cfa.At(r, c) != ch {
			continue
		}
		sum += data[r*w+c]
		n++
	}
	if n == 0 {
		return data[row*w+col]
	}
	return sum / float64(n)
}
