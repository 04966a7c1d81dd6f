package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
	"github.com/goliatone/go-yamlform/pkg/renderers/html"
)

func newPreviewCmd(newSession func() *orchestrator.Session) *cobra.Command {
	var (
		output string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "preview <template>",
		Short: "Render a template's values as an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := loadModel(s, args[0]); err != nil {
				return err
			}
			if err := applySets(s, sets); err != nil {
				return err
			}

			yamlText, err := s.ExportYAML()
			if err != nil {
				return err
			}
			page, err := html.New().Render(s.Model(), yamlText)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, page)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a value as path=value; repeatable")
	return cmd
}
