package orchestrator

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
	"github.com/goliatone/go-yamlform/pkg/templates"
)

const serviceTemplate = `service:
  name: api
  replicas: 2
  debug: false
`

func newTestSession(t *testing.T, files map[string]string) *Session {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, text := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(text)}
	}
	return New(WithStore(templates.NewFSStore(fsys)))
}

func TestSessionListsAndLoadsTemplates(t *testing.T) {
	s := newTestSession(t, map[string]string{
		"service.yaml": serviceTemplate,
		"job.yml":      "job:\n  retries: 3\n",
		"notes.txt":    "ignored",
	})

	names, err := s.Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	want := []string{"job.yml", "service.yaml"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Templates() mismatch (-want +got):\n%s", diff)
	}

	m, err := s.LoadTemplate("service.yaml")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if s.Model() != m {
		t.Error("Model() does not return the loaded model")
	}
	if got := s.TemplateName(); got != "service.yaml" {
		t.Errorf("TemplateName() = %q, want %q", got, "service.yaml")
	}
	if got := m.RootKey(); got != "service" {
		t.Errorf("RootKey() = %q, want %q", got, "service")
	}
}

func TestSessionLoadUnknownTemplate(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.LoadTemplate("missing.yaml"); !errors.Is(err, templates.ErrNotFound) {
		t.Fatalf("LoadTemplate() error = %v, want ErrNotFound", err)
	}
}

func TestSessionExportYAMLRoundTrip(t *testing.T) {
	s := newTestSession(t, map[string]string{"service.yaml": serviceTemplate})
	m, err := s.LoadTemplate("service.yaml")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if err := m.Set(form.Path{"replicas"}, int64(5)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	out, err := s.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML() error = %v", err)
	}
	want := "service:\n  name: api\n  replicas: 5\n  debug: false\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("ExportYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionExportCSV(t *testing.T) {
	s := newTestSession(t, map[string]string{"service.yaml": serviceTemplate})
	if _, err := s.LoadTemplate("service.yaml"); err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	out, err := s.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	want := "path,value\nservice.name,api\nservice.replicas,2\nservice.debug,false\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("ExportCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionExportLocksModel(t *testing.T) {
	s := newTestSession(t, map[string]string{"service.yaml": serviceTemplate})
	m, err := s.LoadTemplate("service.yaml")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	err = m.Export(func(*schema.Map) error {
		if resetErr := m.Reset(); !errors.Is(resetErr, form.ErrLocked) {
			t.Errorf("Reset() during export error = %v, want ErrLocked", resetErr)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
}

func TestSessionValidate(t *testing.T) {
	s := newTestSession(t, map[string]string{"service.yaml": serviceTemplate})
	if _, err := s.LoadTemplate("service.yaml"); err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestSessionExportBeforeLoad(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.ExportYAML(); err == nil {
		t.Fatal("ExportYAML() before load should fail")
	}
	if _, err := s.ExportCSV(); err == nil {
		t.Fatal("ExportCSV() before load should fail")
	}
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() before load should fail")
	}
}
