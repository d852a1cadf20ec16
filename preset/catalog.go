// Package preset holds the read-only catalog of built-in shadows.
package preset

import (
	"strings"

	"shadowme/shadow"
)

var catalog = []Preset{
	{Name: "Subtle Lift", Properties: shadow.Properties{
		OffsetX: 0, OffsetY: 4, BlurRadius: 6, SpreadRadius: -1,
		Color: "#000000", Alpha: 0.1,
	}},
	{Name: "Soft Glow", Properties: shadow.Properties{
		OffsetX: 0, OffsetY: 0, BlurRadius: 20, SpreadRadius: 0,
		Color: "#3B82F6", Alpha: 0.3,
	}},
	{Name: "Deep Shadow", Properties: shadow.Properties{
		OffsetX: 0, OffsetY: 10, BlurRadius: 20, SpreadRadius: -5,
		Color: "#000000", Alpha: 0.4,
	}},
	{Name: "Inset Button", Properties: shadow.Properties{
		OffsetX: 2, OffsetY: 2, BlurRadius: 5, SpreadRadius: 0,
		Color: "#000000", Alpha: 0.2, Inset: true,
	}},
	{Name: "Top Light", Properties: shadow.Properties{
		OffsetX: 0, OffsetY: -5, BlurRadius: 10, SpreadRadius: -2,
		Color: "#000000", Alpha: 0.15,
	}},
	{Name: "Diagonal Pop", Properties: shadow.Properties{
		OffsetX: 8, OffsetY: 8, BlurRadius: 15, SpreadRadius: 0,
		Color: "#000000", Alpha: 0.25,
	}},
}

// All returns the presets in display order. The slice is a copy.
func All() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the preset at index i.
func Get(i int) (Preset, error) {
	if i < 0 || i >= len(catalog) {
		return Preset{}, ErrNotFound
	}
	return catalog[i], nil
}

// ByName finds a preset by name, ignoring case and surrounding spaces.
func ByName(name string) (Preset, error) {
	name = strings.TrimSpace(name)
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, ErrNotFound
}
