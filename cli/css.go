package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newCSSCmd() *cobra.Command {
	var (
		flags     shadowFlags
		formatted bool
		copyOut   bool
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the box-shadow for a preset, saved shadow or flags",
		Long: `Print a box-shadow value.

Start from the defaults, a preset (--preset) or a saved shadow (--saved),
then override individual fields with flags. Values are clamped to the
editor's ranges.

Examples:
  shadowme css --preset "Soft Glow"
  shadowme css -y 20 --blur 25 --color "#3B82F6" --alpha 0.4
  shadowme css --saved card --formatted --copy
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := flags.build(cmd)
			if err != nil {
				return err
			}
			text := out.CSS
			if formatted {
				text = out.Formatted
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if copyOut {
				if err := clipboard.WriteAll(text); err != nil {
					warn(cmd.ErrOrStderr(), "Failed to copy CSS: %v", err)
					return nil
				}
				ok(cmd.ErrOrStderr(), "CSS copied to clipboard!")
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&formatted, "formatted", "f", false, "Print full declarations including vendor prefixes")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "Copy the output to the clipboard")
	return cmd
}
