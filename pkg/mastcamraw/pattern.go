package mastcamraw

import (
	"fmt"
	"strings"
)

// Channel identifies one of the three colour channels sampled by the CFA.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (ch Channel) String() string {
	switch ch {
	case ChannelRed:
		return "R"
	case ChannelGreen:
		return "G"
	case ChannelBlue:
		return "B"
	default:
		return "?"
	}
}

// BayerPattern names the 2x2 colour-filter unit cell of a mosaic frame,
// reading the cell row-major from the top-left sample of the frame.
//
// Note that OpenCV names Bayer patterns from the second row/column of the
// CFA rather than the top-left 2x2 (github.com/opencv/opencv/issues/19629),
// so any adapter handing a pattern to an OpenCV-convention demosaic must
// translate first:
//
//	top-left  →  OpenCV
//	RGGB      →  BG
//	GRBG      →  GB
//	GBRG      →  GR
//	BGGR      →  RG
type BayerPattern int

const (
	PatternRGGB BayerPattern = iota
	PatternGBRG
	PatternGRBG
	PatternBGGR
)

// DefaultPattern is the Mastcam Kodak KAI-2020 CCD unit cell (GR/BG),
// per Bell et al. 2017 and the NASA Mastcam instrument description.
const DefaultPattern = PatternGRBG

func (p BayerPattern) String() string {
	switch p {
	case PatternRGGB:
		return "RGGB"
	case PatternGBRG:
		return "GBRG"
	case PatternGRBG:
		return "GRBG"
	case PatternBGGR:
		return "BGGR"
	default:
		return "Unknown"
	}
}

// ParseBayerPattern converts an external, case-insensitive pattern name
// into its enum value. Unknown names fail with ErrInvalidPattern.
func ParseBayerPattern(name string) (BayerPattern, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "RGGB":
		return PatternRGGB, nil
	case "GBRG":
		return PatternGBRG, nil
	case "GRBG":
		return PatternGRBG, nil
	case "BGGR":
		return PatternBGGR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, name)
	}
}

// CanonicalCFA maps lattice parity (row mod 2, col mod 2) to the channel
// sampled at that position. Built once per image and immutable afterwards.
type CanonicalCFA [2][2]Channel

var cfaTable = [4]CanonicalCFA{
	PatternRGGB: {{ChannelRed, ChannelGreen}, {ChannelGreen, ChannelBlue}},
	PatternGBRG: {{ChannelGreen, ChannelBlue}, {ChannelRed, ChannelGreen}},
	PatternGRBG: {{ChannelGreen, ChannelRed}, {ChannelBlue, ChannelGreen}},
	PatternBGGR: {{ChannelBlue, ChannelGreen}, {ChannelGreen, ChannelRed}},
}

// CFA returns the canonical per-parity channel assignment for the pattern.
// Total over the four valid variants; callers hold a value produced by
// ParseBayerPattern or one of the Pattern constants.
func (p BayerPattern) CFA() CanonicalCFA {
	if p < PatternRGGB || p > PatternBGGR {
		panic(fmt.Sprintf("mastcamraw: bayer pattern out of range: %d", int(p)))
	}
	return cfaTable[p]
}

// At returns the channel sampled at absolute frame position (row, col).
func (c CanonicalCFA) At(row, col int) Channel {
	return c[row&1][col&1]
}
