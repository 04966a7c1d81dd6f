// Package testsupport holds helpers shared by tests across packages.
// Helpers fail the test on error to keep contract tests concise.
package testsupport

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
)

// MustInfer infers a schema from raw template text.
func MustInfer(t *testing.T, text string) *schema.Schema {
	t.Helper()
	sch, err := schema.Infer(text)
	if err != nil {
		t.Fatalf("infer schema: %v", err)
	}
	return sch
}

// MustModel infers a schema and seeds a model from it in one step.
func MustModel(t *testing.T, text string) *form.Model {
	t.Helper()
	m, err := form.New(MustInfer(t, text))
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

// MustModelFromFile reads a template file and seeds a model from it.
func MustModelFromFile(t *testing.T, path string) *form.Model {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	return MustModel(t, string(data))
}

// MustSet writes one value and fails the test on a type or path error.
func MustSet(t *testing.T, m *form.Model, path string, value any) {
	t.Helper()
	if err := m.Set(form.ParsePath(path), value); err != nil {
		t.Fatalf("set %s: %v", path, err)
	}
}

// AssertValue compares the value at path against want with go-cmp.
func AssertValue(t *testing.T, m *form.Model, path string, want any) {
	t.Helper()
	got, err := m.Get(form.ParsePath(path))
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value at %s mismatch (-want +got):\n%s", path, diff)
	}
}
