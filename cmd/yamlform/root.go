package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-yamlform/pkg/orchestrator"
	"github.com/goliatone/go-yamlform/pkg/templates"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newRootCmd() *cobra.Command {
	var templatesDir string

	root := &cobra.Command{
		Use:   "yamlform",
		Short: "Turn YAML templates into editable forms and validated exports",
		Long: `yamlform infers a typed form from a YAML template: scalars keep the
type of their template default, nested mappings become sections, and the
filled-in values export back to YAML or CSV with key order preserved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&templatesDir, "templates", "t", "templates", "directory holding *.yaml templates")

	newSession := func() *orchestrator.Session {
		return orchestrator.New(orchestrator.WithStore(templates.NewDirStore(templatesDir)))
	}

	root.AddCommand(
		newListCmd(newSession),
		newShowCmd(newSession),
		newExportCmd(newSession),
		newCsvCmd(newSession),
		newValidateCmd(newSession),
		newEditCmd(newSession),
		newPreviewCmd(newSession),
	)
	return root
}

// loadModel resolves the argument first as a template name in the store and
// falls back to reading it as a file path, so one-off templates work without
// copying them into the templates directory.
func loadModel(s *orchestrator.Session, nameOrPath string) error {
	_, err := s.LoadTemplate(nameOrPath)
	if err == nil {
		return nil
	}
	data, readErr := os.ReadFile(nameOrPath)
	if readErr != nil {
		return err
	}
	_, err = s.LoadText(string(data))
	return err
}

// applySets writes every --set path=value pair, coercing the text according
// to the field's frozen kind.
func applySets(s *orchestrator.Session, pairs []string) error {
	m := s.Model()
	for _, pair := range pairs {
		path, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want path=value", pair)
		}
		if err := setFromString(m, path, raw); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(cmd *cobra.Command, output, text string) error {
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("written ")+output)
	return nil
}
