package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
	"github.com/goliatone/go-yamlform/pkg/renderers/tui"
)

func newEditCmd(newSession func() *orchestrator.Session) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "edit <template>",
		Short: "Fill in a template interactively, then export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := loadModel(s, args[0]); err != nil {
				return err
			}

			editor := tui.New()
			if err := editor.Run(cmd.Context(), s.Model()); err != nil {
				return err
			}

			var (
				text string
				err  error
			)
			switch format {
			case "yaml":
				text, err = s.ExportYAML()
			case "csv":
				text, err = s.ExportCSV()
			default:
				return fmt.Errorf("unknown format %q, want yaml or csv", format)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, text)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
