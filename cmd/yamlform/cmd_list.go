package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
)

func newListCmd(newSession func() *orchestrator.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the templates in the templates directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := newSession().Templates()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("no templates found"))
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
