package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
)

func newExportCmd(newSession func() *orchestrator.Session) *cobra.Command {
	var (
		format string
		output string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "export <template>",
		Short: "Export a template's values as YAML or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := loadModel(s, args[0]); err != nil {
				return err
			}
			if err := applySets(s, sets); err != nil {
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
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a value as path=value; repeatable")
	return cmd
}
