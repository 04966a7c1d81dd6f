package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
)

func newValidateCmd(newSession func() *orchestrator.Session) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "validate <template>",
		Short: "Check that a template's values survive a YAML round trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := loadModel(s, args[0]); err != nil {
				return err
			}
			if err := applySets(s, sets); err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("valid"))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a value as path=value; repeatable")
	return cmd
}
