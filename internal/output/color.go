package output

import (
	"io"
	"os"
)

// Color modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorMode reports whether mode is one of the accepted color modes.
// The empty string is accepted and means auto.
func ValidColorMode(mode string) bool {
	switch mode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ResolveColorMode determines the effective isTTY value from a color mode
// and actual TTY detection:
//   - "never":  always disable colors
//   - "always": always enable colors
//   - anything else: use the detected isTTY value
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for an *os.File that is a character device.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
