package mastcamraw

// Options carries the per-run processing parameters. They are threaded
// explicitly through the pipeline; there is no ambient configuration.
type Options struct {
	Gains          Gains
	LowPercentile  float64
	HighPercentile float64
}

// DefaultOptions returns the stock Mastcam processing parameters.
func DefaultOptions() Options {
	return Options{
		Gains:          DefaultGains,
		LowPercentile:  0.5,
		HighPercentile: 99.5,
	}
}

// Process runs the full colour-reconstruction chain on one mosaic frame:
// demosaic, gray-world white balance, fixed cast correction, percentile
// contrast stretch. The returned raster is clamped to [0, 255] and ready
// for 8-bit encoding. A failure in any stage aborts the image before any
// output raster exists; no partial result is observable.
//
// Each call is independent and shares no state, so frames from a batch
// may be processed concurrently.
func Process(frame *MosaicFrame, pattern BayerPattern, opts Options) (*RGBRaster, error) {
	img, err := DemosaicVNG(frame, pattern.CFA())
	if err != nil {
		return nil, err
	}
	WhiteBalance(img)
	CorrectCast(img, opts.Gains)
	Stretch(img, opts.LowPercentile, opts.HighPercentile)
	return img, nil
}
