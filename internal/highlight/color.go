package highlight

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports a color string whose trailing six characters cannot be
// parsed as RRGGBB hex digits.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color: %q", e.Input)
}

// HexToRGB converts a hex color string into the "R;G;B" decimal triplet used
// by 24-bit SGR sequences. Only the last six characters are read, so inputs
// with a "#" prefix or a leading alpha channel are tolerated. An empty input
// returns an empty string with no error; callers use that to mean "no color,
// emit nothing".
func HexToRGB(color string) (string, error) {
	if color == "" {
		return "", nil
	}
	if len(color) < 6 {
		return "", &FormatError{Input: color}
	}

	hex := color[len(color)-6:]
	var parts [3]string
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return "", &FormatError{Input: color}
		}
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts[:], ";"), nil
}
