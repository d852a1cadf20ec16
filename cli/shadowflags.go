package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shadowme/css"
	"shadowme/preset"
	"shadowme/shadow"
)

// shadowFlags are the editing flags shared by `css` and `saved save`.
type shadowFlags struct {
	preset string
	saved  string

	offsetX, offsetY, blur, spread int
	color                          string
	alpha                          float64
	inset                          bool
}

func (f *shadowFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.preset, "preset", "", "Start from a built-in preset (by name or number from 'shadowme presets')")
	fs.StringVar(&f.saved, "saved", "", "Start from a saved shadow (by id or name)")
	fs.IntVarP(&f.offsetX, "x", "x", 0, "Horizontal offset in px")
	fs.IntVarP(&f.offsetY, "y", "y", 0, "Vertical offset in px")
	fs.IntVar(&f.blur, "blur", 0, "Blur radius in px")
	fs.IntVar(&f.spread, "spread", 0, "Spread radius in px")
	fs.StringVar(&f.color, "color", "", "Hex color, e.g. #3B82F6")
	fs.Float64Var(&f.alpha, "alpha", 0, "Opacity between 0 and 1")
	fs.BoolVar(&f.inset, "inset", false, "Inset shadow")
	cmd.MarkFlagsMutuallyExclusive("preset", "saved")
}

// build drives a fresh model through the same intents the editor would send:
// apply a starting configuration, then update each flag that was given.
func (f *shadowFlags) build(cmd *cobra.Command) (css.Output, error) {
	model := shadow.NewModel()
	engine := css.NewEngine(model.Snapshot(), css.WithInterval(cfg.CSS.Debounce))
	model.Observe(engine)
	defer engine.Stop()

	switch {
	case f.preset != "":
		p, err := lookupPreset(f.preset)
		if err != nil {
			return css.Output{}, fmt.Errorf("%w: %q", err, f.preset)
		}
		model.ApplyConfiguration(p.Properties.Partial())
	case f.saved != "":
		s, found := registry.Find(f.saved)
		if !found {
			return css.Output{}, fmt.Errorf("saved shadow %q not found", f.saved)
		}
		model.ApplyConfiguration(s.Properties.Clamp().Partial())
	}

	updates := []struct {
		flag  string
		field string
		value any
	}{
		{"x", shadow.FieldOffsetX, f.offsetX},
		{"y", shadow.FieldOffsetY, f.offsetY},
		{"blur", shadow.FieldBlurRadius, f.blur},
		{"spread", shadow.FieldSpreadRadius, f.spread},
		{"color", shadow.FieldColor, f.color},
		{"alpha", shadow.FieldAlpha, f.alpha},
		{"inset", shadow.FieldInset, f.inset},
	}
	for _, u := range updates {
		if !cmd.Flags().Changed(u.flag) {
			continue
		}
		v, err := shadow.ClampValue(u.field, u.value)
		if err != nil {
			return css.Output{}, fmt.Errorf("--%s: %w", u.flag, err)
		}
		if err := model.Update(u.field, v); err != nil {
			return css.Output{}, err
		}
	}

	engine.Flush()
	return engine.Current(), nil
}

// lookupPreset resolves ref as a 1-based catalog number, then as a name.
func lookupPreset(ref string) (preset.Preset, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		return preset.Get(n - 1)
	}
	return preset.ByName(ref)
}
