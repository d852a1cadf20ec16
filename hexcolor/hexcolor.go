// Package hexcolor converts between hex color codes and CSS rgba() notation.
package hexcolor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HexToRgba renders hex (#RRGGBB or #RGB) with alpha as "rgba(R, G, B, A)".
// Any other length, or digits that are not hex, produce black channels.
// Alpha is written as-is without rounding.
func HexToRgba(hex string, alpha float64) string {
	r, g, b := channels(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatAlpha(alpha))
}

// FormatAlpha prints alpha in its shortest decimal form ("0.3", "1").
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}

// Valid reports whether hex is a "#RGB" or "#RRGGBB" code.
func Valid(hex string) bool {
	if !strings.HasPrefix(hex, "#") || (len(hex) != 7 && len(hex) != 4) {
		return false
	}
	_, err := colorful.Hex(hex)
	return err == nil
}

// Normalize adds the leading '#' to a bare 3 or 6 digit code. Other input is
// returned unchanged.
func Normalize(hex string) string {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") && (len(hex) == 6 || len(hex) == 3) {
		return "#" + hex
	}
	return hex
}

func channels(hex string) (r, g, b uint8) {
	if len(hex) != 7 && len(hex) != 4 {
		return 0, 0, 0
	}
	// The first character is a marker and is not inspected.
	c, err := colorful.Hex("#" + hex[1:])
	if err != nil {
		return 0, 0, 0
	}
	return c.RGB255()
}
