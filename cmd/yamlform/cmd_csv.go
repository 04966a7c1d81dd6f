package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
)

// csv is shorthand for export --format csv.
func newCsvCmd(newSession func() *orchestrator.Session) *cobra.Command {
	var (
		output string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "csv <template>",
		Short: "Export a template's values as path,value rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := loadModel(s, args[0]); err != nil {
				return err
			}
			if err := applySets(s, sets); err != nil {
				return err
			}
			text, err := s.ExportCSV()
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, text)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a value as path=value; repeatable")
	return cmd
}
