package img2ascii

import (
	"os"

	"golang.org/x/term"
)

// WidthSource records which code path decided the output width.
type WidthSource int

const (
	// WidthSourceUser means an explicit user override was used verbatim.
	WidthSourceUser WidthSource = iota
	// WidthSourceAutoDetected means the terminal width was probed and
	// adjusted by the safety margin and minimum floor.
	WidthSourceAutoDetected
	// WidthSourceFallback means detection failed and the default width
	// was used.
	WidthSourceFallback
)

func (s WidthSource) String() string {
	switch s {
	case WidthSourceUser:
		return "user"
	case WidthSourceAutoDetected:
		return "auto-detected"
	case WidthSourceFallback:
		return "fallback"
	}
	return "unknown"
}

// WidthResolution is the resolved output width together with its
// provenance, consumed by the resize step and by the user-facing
// width messages.
type WidthResolution struct {
	Width  int
	Source WidthSource
}

const (
	// widthMargin shrinks detected widths; terminals often reserve a
	// column or two for borders or the cursor, and without it lines
	// can wrap.
	widthMargin = 2
	// minAutoWidth is the floor for detected widths. Below roughly 40
	// columns the art becomes illegible. User overrides bypass it.
	minAutoWidth = 40
	// fallbackWidth is used when detection fails and no override was
	// given.
	fallbackWidth = 80
)

// DetectTerminalSize probes the terminal attached to stdout and
// returns its dimensions in character cells. ok is false when stdout
// is not a terminal or the size cannot be determined.
func DetectTerminalSize() (width, height int, ok bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// ResolveOutputWidth decides the output width. A positive userWidth is
// an explicit override used verbatim; zero means no override was
// given, in which case the detected terminal width (minus margin,
// clamped to the floor) or the fallback default is used.
func ResolveOutputWidth(userWidth int) WidthResolution {
	detected := 0
	if w, _, ok := DetectTerminalSize(); ok {
		detected = w
	}
	return computeOutputWidth(userWidth, detected)
}

// computeOutputWidth is the pure decision behind ResolveOutputWidth;
// zero stands for an absent value on both inputs.
func computeOutputWidth(userWidth, detectedWidth int) WidthResolution {
	if userWidth > 0 {
		return WidthResolution{Width: userWidth, Source: WidthSourceUser}
	}

	if detectedWidth > 0 {
		width := detectedWidth - widthMargin
		if width < minAutoWidth {
			width = minAutoWidth
		}
		return WidthResolution{Width: width, Source: WidthSourceAutoDetected}
	}

	return WidthResolution{Width: fallbackWidth, Source: WidthSourceFallback}
}
