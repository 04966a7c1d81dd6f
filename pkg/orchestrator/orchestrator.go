// Package orchestrator coordinates the full pipeline: template store to
// schema inference to form model to export. It applies sensible defaults
// (directory store, default export engine) while remaining open to
// dependency injection for advanced callers.
package orchestrator

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-yamlform/pkg/export"
	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
	"github.com/goliatone/go-yamlform/pkg/templates"
)

const defaultTemplatesDir = "templates"

// Option customises the session configuration.
type Option func(*Session)

// WithStore injects a custom template store. The default reads *.yaml files
// from ./templates.
func WithStore(store templates.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithExportEngine injects a custom export engine.
func WithExportEngine(engine *export.Engine) Option {
	return func(s *Session) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// Session holds one editing session: the loaded template, its inferred
// schema, and the form model. Each session is independent; nothing is shared
// between two sessions.
type Session struct {
	store  templates.Store
	engine *export.Engine

	name  string
	model *form.Model
}

// New constructs a session applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Session {
	s := &Session{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.store == nil {
		s.store = templates.NewDirStore(defaultTemplatesDir)
	}
	if s.engine == nil {
		s.engine = export.New()
	}
	return s
}

// Templates lists the names available in the configured store.
func (s *Session) Templates() ([]string, error) {
	return s.store.List()
}

// LoadTemplate fetches a template by name, infers its schema, and replaces
// the session's model with one seeded from the template defaults.
func (s *Session) LoadTemplate(name string) (*form.Model, error) {
	text, err := s.store.Load(name)
	if err != nil {
		return nil, err
	}
	model, err := s.loadText(text)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: template %q: %w", name, err)
	}
	s.name = name
	return model, nil
}

// LoadText builds the session model directly from raw YAML, bypassing the
// store. Useful when the template comes from stdin or a one-off file.
func (s *Session) LoadText(text string) (*form.Model, error) {
	model, err := s.loadText(text)
	if err != nil {
		return nil, err
	}
	s.name = ""
	return model, nil
}

func (s *Session) loadText(text string) (*form.Model, error) {
	sch, err := schema.Infer(text)
	if err != nil {
		return nil, err
	}
	model, err := form.New(sch)
	if err != nil {
		return nil, err
	}
	s.model = model
	return model, nil
}

// Model returns the current form model, or nil before any load.
func (s *Session) Model() *form.Model {
	return s.model
}

// TemplateName returns the name of the loaded template, empty when the model
// came from raw text.
func (s *Session) TemplateName() string {
	return s.name
}

// ExportYAML serializes the current values as a YAML document. The model is
// locked against Load and Reset for the duration.
func (s *Session) ExportYAML() (string, error) {
	if s.model == nil {
		return "", errors.New("orchestrator: no template loaded")
	}
	var out string
	err := s.model.Export(func(data *schema.Map) error {
		text, err := s.engine.ToYAML(data)
		if err != nil {
			return err
		}
		if err := s.engine.ValidateText(data, text); err != nil {
			return err
		}
		out = text
		return nil
	})
	return out, err
}

// ExportCSV serializes the current values as path,value rows.
func (s *Session) ExportCSV() (string, error) {
	if s.model == nil {
		return "", errors.New("orchestrator: no template loaded")
	}
	var out string
	err := s.model.Export(func(data *schema.Map) error {
		text, err := s.engine.ToCSV(data)
		if err != nil {
			return err
		}
		out = text
		return nil
	})
	return out, err
}

// Validate runs the YAML round-trip check without keeping the output.
func (s *Session) Validate() error {
	if s.model == nil {
		return errors.New("orchestrator: no template loaded")
	}
	return s.model.Export(func(data *schema.Map) error {
		return s.engine.Validate(data)
	})
}
