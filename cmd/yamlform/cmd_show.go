package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
	"github.com/goliatone/go-yamlform/pkg/schema"
)

func newShowCmd(newSession func() *orchestrator.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template>",
		Short: "Show the inferred schema of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			if err := loadModel(s, args[0]); err != nil {
				return err
			}
			sch := s.Model().Schema()

			title := sch.RootKey
			if sch.Tabbed {
				title += " (tabbed)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleTitle.Render(title))
			printField(cmd, &sch.Root, 1)
			return nil
		},
	}
}

func printField(cmd *cobra.Command, field *schema.Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range field.Children {
		child := &field.Children[i]
		switch {
		case child.Leaf() && child.Kind == schema.KindList:
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s: list of %s\n", indent, child.Key, child.Elem)
		case child.Leaf():
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s: %s %s\n", indent, child.Key, child.Kind,
				styleMuted.Render(fmt.Sprintf("(default %v)", child.Default)))
		case child.Kind == schema.KindMapping:
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s:\n", indent, child.Key)
			printField(cmd, child, depth+1)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s: list of mappings (%d)\n", indent, child.Key, len(child.Children))
			if len(child.Children) > 0 {
				printField(cmd, &child.Children[0], depth+1)
			}
		}
	}
}
