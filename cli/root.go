// Package cli implements the shadowme command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shadowme/config"
	"shadowme/saved"
	"shadowme/store"
)

var (
	cfg      *config.Config
	registry *saved.Registry

	flagNoColor   bool
	flagConfig    string
	flagEphemeral bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shadowme",
		Short: "Compose CSS box-shadows, keep named favourites",
		Long: `shadowme builds box-shadow declarations from offsets, blur, spread,
color and opacity, ships a set of presets, and keeps your own named shadows
in a local store.

Run 'shadowme serve' to start the editor API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initColor(flagNoColor)

			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			var st store.Store = store.NewFileStore(cfg.Storage.Dir)
			if flagEphemeral {
				st = store.NewMemStore()
			}
			registry = saved.NewRegistry(st)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/shadowme/config.yml)")
	root.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep saved shadows in memory only")

	root.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newPresetsCmd(),
		newCSSCmd(),
		newSavedCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// ok prints a green success line.
func ok(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func initColor(noColor bool) {
	if noColor || !isTTY() {
		color.NoColor = true
	}
}
