package img2ascii

import (
	"fmt"

	"github.com/kwren/img2ascii/imageutil"
)

// Mode selects the conversion strategy.
type Mode int

const (
	// ModeStandard maps pixel brightness through the density ramp.
	ModeStandard Mode = iota
	// ModeEdge maps Canny-detected edges to '#' and everything else
	// to spaces.
	ModeEdge
)

func (m Mode) String() string {
	if m == ModeEdge {
		return "edge"
	}
	return "standard"
}

// ParseMode parses a mode name. Anything other than "standard" or
// "edge" fails with ErrUnknownMode naming the offending value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "standard":
		return ModeStandard, nil
	case "edge":
		return ModeEdge, nil
	}
	return 0, fmt.Errorf("%w %q (use \"standard\" or \"edge\")", ErrUnknownMode, s)
}

// Convert produces the character grid for a grayscale image using the
// given mode.
func Convert(gray *imageutil.GrayImage, mode Mode) (Grid, error) {
	if mode == ModeEdge {
		return DetectAndConvert(gray)
	}
	return ConvertToASCII(gray)
}
