package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
	"github.com/goliatone/go-yamlform/pkg/testsupport"
)

const configTemplate = "Config:\n  name: \"App\"\n  port: 8080\n  debug: true\n  ratio: 0.5\n  tags:\n    - web\n    - api\n  server:\n    host: localhost\n    threads: 4\n"

func TestModelSeedsDefaults(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	tests := map[string]any{
		"name":           "App",
		"port":           int64(8080),
		"debug":          true,
		"ratio":          0.5,
		"server.host":    "localhost",
		"server.threads": int64(4),
	}
	for path, want := range tests {
		got, err := m.Get(form.ParsePath(path))
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		if got != want {
			t.Fatalf("get %s = %v (%T), want %v (%T)", path, got, got, want, want)
		}
	}

	tags, err := m.Get(form.ParsePath("tags"))
	if err != nil {
		t.Fatalf("get tags: %v", err)
	}
	if diff := cmp.Diff([]any{"web", "api"}, tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestModelSetAndGet(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	sets := map[string]any{
		"name":           "Renamed",
		"port":           int64(9090),
		"debug":          false,
		"ratio":          1.25,
		"server.threads": int64(8),
	}
	for path, value := range sets {
		if err := m.Set(form.ParsePath(path), value); err != nil {
			t.Fatalf("set %s: %v", path, err)
		}
		got, err := m.Get(form.ParsePath(path))
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		if got != value {
			t.Fatalf("get %s = %v, want %v", path, got, value)
		}
	}
}

func TestModelRejectsTypeMismatch(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	err := m.Set(form.ParsePath("port"), "abc")
	var mismatch *form.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *TypeMismatchError", err)
	}
	if mismatch.Want != schema.KindInt || mismatch.Got != schema.KindString {
		t.Fatalf("mismatch kinds = %s/%s, want integer/string", mismatch.Want, mismatch.Got)
	}

	got, err := m.Get(form.ParsePath("port"))
	if err != nil {
		t.Fatalf("get port: %v", err)
	}
	if got != int64(8080) {
		t.Fatalf("port after rejected set = %v, want 8080", got)
	}
}

func TestModelEmptyStringUnsetsAnyScalar(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	for _, path := range []string{"name", "port", "debug", "ratio"} {
		if err := m.Set(form.ParsePath(path), ""); err != nil {
			t.Fatalf("set %s to empty: %v", path, err)
		}
		got, err := m.Get(form.ParsePath(path))
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		if got != "" {
			t.Fatalf("%s after unset = %v, want empty string", path, got)
		}
	}
}

func TestModelNumericCoercion(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	// integral float lands in an integer field as int64
	if err := m.Set(form.ParsePath("port"), 9091.0); err != nil {
		t.Fatalf("set port: %v", err)
	}
	if got, _ := m.Get(form.ParsePath("port")); got != int64(9091) {
		t.Fatalf("port = %v (%T), want int64 9091", got, got)
	}

	// integer lands in a float field as float64
	if err := m.Set(form.ParsePath("ratio"), 2); err != nil {
		t.Fatalf("set ratio: %v", err)
	}
	if got, _ := m.Get(form.ParsePath("ratio")); got != 2.0 {
		t.Fatalf("ratio = %v (%T), want float64 2", got, got)
	}

	// fractional float rejected by an integer field
	err := m.Set(form.ParsePath("port"), 1.5)
	var mismatch *form.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *TypeMismatchError", err)
	}
}

func TestModelListMutation(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	if err := m.Set(form.ParsePath("tags"), []string{"cli"}); err != nil {
		t.Fatalf("set tags: %v", err)
	}
	got, _ := m.Get(form.ParsePath("tags"))
	if diff := cmp.Diff([]any{"cli"}, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	if err := m.Set(form.ParsePath("tags"), []any{"a", "b"}); err != nil {
		t.Fatalf("set tags: %v", err)
	}
	if err := m.Set(form.ParsePath("tags.1"), "c"); err != nil {
		t.Fatalf("set element: %v", err)
	}
	if got, _ := m.Get(form.ParsePath("tags.1")); got != "c" {
		t.Fatalf("tags.1 = %v, want c", got)
	}

	// element kind is enforced, and a failed whole-list set leaves the
	// list untouched
	err := m.Set(form.ParsePath("tags"), []any{"ok", 7})
	var mismatch *form.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *TypeMismatchError", err)
	}
	got, _ = m.Get(form.ParsePath("tags"))
	if diff := cmp.Diff([]any{"a", "c"}, got); diff != "" {
		t.Fatalf("tags after rejected set (-want +got):\n%s", diff)
	}
}

func TestModelListOfMappings(t *testing.T) {
	m := testsupport.MustModel(t, "Catalog:\n  items:\n    - name: First\n      code: f1\n    - name: Second\n      code: s2\n")

	if err := m.Set(form.ParsePath("items.1.name"), "Renamed"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := m.Get(form.ParsePath("items.1.name"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "Renamed" {
		t.Fatalf("items.1.name = %v, want Renamed", got)
	}
}

func TestModelUnknownPath(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	for _, path := range []string{"missing", "server.missing", "tags.9", "name.child"} {
		_, err := m.Get(form.ParsePath(path))
		var pathErr *form.PathError
		if !errors.As(err, &pathErr) {
			t.Fatalf("get %s error = %v, want *PathError", path, err)
		}
	}
}

func TestModelMappingNotAssignable(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)
	if err := m.Set(form.ParsePath("server"), map[string]any{"host": "x"}); err == nil {
		t.Fatal("assigning a mapping field succeeded")
	}
}

func TestModelStructuredDataOrder(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	data := m.StructuredData()
	if diff := cmp.Diff([]string{"Config"}, data.Keys()); diff != "" {
		t.Fatalf("top-level keys (-want +got):\n%s", diff)
	}
	inner, _ := data.Get("Config")
	innerMap, ok := inner.(*schema.Map)
	if !ok {
		t.Fatalf("Config value type = %T, want *schema.Map", inner)
	}
	want := []string{"name", "port", "debug", "ratio", "tags", "server"}
	if diff := cmp.Diff(want, innerMap.Keys()); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
}

func TestModelExportLocksLoad(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)
	sch := m.Schema()

	err := m.Export(func(*schema.Map) error {
		if err := m.Load(sch); !errors.Is(err, form.ErrLocked) {
			t.Fatalf("load during export = %v, want ErrLocked", err)
		}
		if err := m.Reset(); !errors.Is(err, form.ErrLocked) {
			t.Fatalf("reset during export = %v, want ErrLocked", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// lock released afterwards
	if err := m.Reset(); err != nil {
		t.Fatalf("reset after export: %v", err)
	}
}

func TestModelResetRestoresDefaults(t *testing.T) {
	m := testsupport.MustModel(t, configTemplate)

	if err := m.Set(form.ParsePath("name"), "Changed"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got, _ := m.Get(form.ParsePath("name")); got != "App" {
		t.Fatalf("name after reset = %v, want App", got)
	}
}
