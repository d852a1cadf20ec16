// Package shadow holds the box-shadow property model: the complete set of
// shadow fields, their defaults, and the single mutable current value.
package shadow

import (
	"fmt"
	"math"

	"shadowme/hexcolor"
)

// Properties is one complete shadow configuration.
type Properties struct {
	OffsetX      int     `json:"offsetX" yaml:"offsetX"`
	OffsetY      int     `json:"offsetY" yaml:"offsetY"`
	BlurRadius   int     `json:"blurRadius" yaml:"blurRadius"`
	SpreadRadius int     `json:"spreadRadius" yaml:"spreadRadius"`
	Color        string  `json:"color" yaml:"color"`
	Alpha        float64 `json:"alpha" yaml:"alpha"`
	Inset        bool    `json:"inset" yaml:"inset"`
}

// Field names as used by Model.Update and the JSON encoding.
const (
	FieldOffsetX      = "offsetX"
	FieldOffsetY      = "offsetY"
	FieldBlurRadius   = "blurRadius"
	FieldSpreadRadius = "spreadRadius"
	FieldColor        = "color"
	FieldAlpha        = "alpha"
	FieldInset        = "inset"
)

// Control ranges, matching the sliders of the editor.
const (
	MinOffset = -50
	MaxOffset = 50
	MinBlur   = 0
	MaxBlur   = 100
	MinSpread = -50
	MaxSpread = 50
)

// Defaults returns the configuration the editor starts from and resets to.
func Defaults() Properties {
	return Properties{
		OffsetX:      0,
		OffsetY:      10,
		BlurRadius:   15,
		SpreadRadius: -3,
		Color:        "#000000",
		Alpha:        0.2,
		Inset:        false,
	}
}

// Clamp pulls every numeric field into its control range and normalizes the
// color code. An unusable color falls back to the default.
func (p Properties) Clamp() Properties {
	p.OffsetX = clampInt(p.OffsetX, MinOffset, MaxOffset)
	p.OffsetY = clampInt(p.OffsetY, MinOffset, MaxOffset)
	p.BlurRadius = clampInt(p.BlurRadius, MinBlur, MaxBlur)
	p.SpreadRadius = clampInt(p.SpreadRadius, MinSpread, MaxSpread)
	switch {
	case math.IsNaN(p.Alpha), p.Alpha < 0:
		p.Alpha = 0
	case p.Alpha > 1:
		p.Alpha = 1
	}
	p.Color = hexcolor.Normalize(p.Color)
	if !hexcolor.Valid(p.Color) {
		p.Color = Defaults().Color
	}
	return p
}

// Partial converts p into a Partial with every field present.
func (p Properties) Partial() Partial {
	return Partial{
		OffsetX:      &p.OffsetX,
		OffsetY:      &p.OffsetY,
		BlurRadius:   &p.BlurRadius,
		SpreadRadius: &p.SpreadRadius,
		Color:        &p.Color,
		Alpha:        &p.Alpha,
		Inset:        &p.Inset,
	}
}

// Partial is a configuration where any field may be absent, such as a preset
// or a saved entry written before a field existed.
type Partial struct {
	OffsetX      *int     `json:"offsetX,omitempty" yaml:"offsetX,omitempty"`
	OffsetY      *int     `json:"offsetY,omitempty" yaml:"offsetY,omitempty"`
	BlurRadius   *int     `json:"blurRadius,omitempty" yaml:"blurRadius,omitempty"`
	SpreadRadius *int     `json:"spreadRadius,omitempty" yaml:"spreadRadius,omitempty"`
	Color        *string  `json:"color,omitempty" yaml:"color,omitempty"`
	Alpha        *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Inset        *bool    `json:"inset,omitempty" yaml:"inset,omitempty"`
}

// Resolve overlays the present fields onto Defaults.
func (p Partial) Resolve() Properties {
	out := Defaults()
	if p.OffsetX != nil {
		out.OffsetX = *p.OffsetX
	}
	if p.OffsetY != nil {
		out.OffsetY = *p.OffsetY
	}
	if p.BlurRadius != nil {
		out.BlurRadius = *p.BlurRadius
	}
	if p.SpreadRadius != nil {
		out.SpreadRadius = *p.SpreadRadius
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.Alpha != nil {
		out.Alpha = *p.Alpha
	}
	if p.Inset != nil {
		out.Inset = *p.Inset
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampValue clamps a raw value destined for field the same way Clamp does.
// A color string that is not a hex code is rejected with ErrInvalidValue;
// values of unexpected types pass through for Model.Update to reject.
func ClampValue(field string, value any) (any, error) {
	switch field {
	case FieldOffsetX, FieldOffsetY, FieldBlurRadius, FieldSpreadRadius:
		f, err := toFloat(value)
		if err != nil {
			return value, nil
		}
		lo, hi := float64(MinOffset), float64(MaxOffset)
		switch field {
		case FieldBlurRadius:
			lo, hi = MinBlur, MaxBlur
		case FieldSpreadRadius:
			lo, hi = MinSpread, MaxSpread
		}
		return math.Max(lo, math.Min(hi, f)), nil
	case FieldAlpha:
		f, err := toFloat(value)
		if err != nil {
			return value, nil
		}
		return math.Max(0, math.Min(1, f)), nil
	case FieldColor:
		if s, ok := value.(string); ok {
			hex := hexcolor.Normalize(s)
			if !hexcolor.Valid(hex) {
				return nil, fmt.Errorf("%w: color %q is not a hex code", ErrInvalidValue, s)
			}
			return hex, nil
		}
	}
	return value, nil
}
