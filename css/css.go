// Package css derives box-shadow declarations from shadow properties.
package css

import (
	"fmt"
	"strings"

	"shadowme/hexcolor"
	"shadowme/shadow"
)

// Output is everything derived from one snapshot.
type Output struct {
	Properties shadow.Properties `json:"properties"`
	CSS        string            `json:"css"`
	Formatted  string            `json:"formatted"`
}

// Shadow returns the box-shadow value for p:
// [inset ]<x>px <y>px <blur>px <spread>px rgba(...)
func Shadow(p shadow.Properties) string {
	s := fmt.Sprintf("%dpx %dpx %dpx %dpx %s",
		p.OffsetX, p.OffsetY, p.BlurRadius, p.SpreadRadius,
		hexcolor.HexToRgba(p.Color, p.Alpha))
	if p.Inset {
		return "inset " + s
	}
	return s
}

// Format expands a box-shadow value into the standard declaration followed by
// the -webkit- and -moz- duplicates, one per line.
func Format(value string) string {
	return strings.Join([]string{
		"box-shadow: " + value + ";",
		"-webkit-box-shadow: " + value + ";",
		"-moz-box-shadow: " + value + ";",
	}, "\n")
}

// Derive computes the full Output for p.
func Derive(p shadow.Properties) Output {
	s := Shadow(p)
	return Output{Properties: p, CSS: s, Formatted: Format(s)}
}
