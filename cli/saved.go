package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shadowme/saved"
)

func newSavedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved shadows",
	}
	cmd.AddCommand(
		newSavedListCmd(),
		newSavedSaveCmd(),
		newSavedDeleteCmd(),
		newSavedExportCmd(),
		newSavedImportCmd(),
	)
	return cmd
}

func newSavedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved shadows",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			list := registry.List()
			if len(list) == 0 {
				warn(w, "No saved shadows yet")
				return nil
			}
			header(w, "Saved shadows (%d)", len(list))
			for _, s := range list {
				fmt.Fprintf(w, "  %-20s %s\n", color.CyanString(s.Name), s.CSS)
				fmt.Fprintf(w, "  %-20s %s\n", "", color.New(color.Faint).Sprint(s.ID))
			}
			return nil
		},
	}
}

func newSavedSaveCmd() *cobra.Command {
	var flags shadowFlags

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a shadow under a name",
		Long: `Save a shadow under a name.

The shadow is built the same way as 'shadowme css': defaults, optionally a
--preset or --saved starting point, then per-field flags.

Examples:
  shadowme saved save card --preset "Subtle Lift" --blur 20
  shadowme saved save "Focus Ring" --color "#3B82F6" -y 0 --spread 3 --alpha 0.5
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := flags.build(cmd)
			if err != nil {
				return err
			}
			s, err := registry.Save(args[0], out.Properties, out.CSS)
			switch {
			case errors.Is(err, saved.ErrEmptyName):
				return fmt.Errorf("please enter a name for your shadow")
			case errors.Is(err, saved.ErrDuplicateName):
				return fmt.Errorf("a shadow with this name already exists")
			case err != nil:
				return err
			}
			ok(cmd.OutOrStdout(), "Saved %q (%s)", s.Name, s.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newSavedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id-or-name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved shadow",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, found := registry.Find(args[0])
			if !found {
				return fmt.Errorf("%w: %q", saved.ErrNotFound, args[0])
			}
			registry.Delete(s.ID)
			ok(cmd.OutOrStdout(), "Deleted %q", s.Name)
			return nil
		},
	}
}

func newSavedExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write saved shadows as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := registry.Export()
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			ok(cmd.OutOrStdout(), "Exported %d shadows to %s", len(registry.List()), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func newSavedImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add shadows from a YAML export",
		Long: `Add shadows from a YAML file written by 'shadowme saved export'.

Entries whose name is empty or already taken are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			n, err := registry.Import(data)
			if err != nil {
				return err
			}
			if n == 0 {
				warn(cmd.OutOrStdout(), "Nothing imported")
				return nil
			}
			ok(cmd.OutOrStdout(), "Imported %d shadows", n)
			return nil
		},
	}
}
