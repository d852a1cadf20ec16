package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shadowme/css"
	"shadowme/preset"
)

var styleName = lipgloss.NewStyle().Bold(true).Width(14)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in shadow presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			header(w, "Presets")
			for i, p := range preset.All() {
				fmt.Fprintf(w, "%2d %s %s %s\n", i+1, swatch(p.Properties.Color), styleName.Render(p.Name), css.Shadow(p.Properties))
			}
			return nil
		},
	}
}

// swatch renders a small block in hex; plain brackets when color is off.
func swatch(hex string) string {
	if color.NoColor {
		return "[  ]"
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
