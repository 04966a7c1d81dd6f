package templates_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-yamlform/pkg/templates"
)

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"webapp.yml":   "WebApp:\n  name: demo\n",
		"api.yaml":     "API:\n  port: 8080\n",
		"notes.txt":    "not a template",
		"UPPER.YAML":   "Upper:\n  x: 1\n",
		"ignored.json": "{}",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	store := templates.NewDirStore(dir)

	names, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"UPPER.YAML", "api.yaml", "webapp.yml"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	text, err := store.Load("webapp.yml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != files["webapp.yml"] {
		t.Fatalf("loaded text = %q", text)
	}
}

func TestDirStoreNotFound(t *testing.T) {
	store := templates.NewDirStore(t.TempDir())

	for _, name := range []string{"missing.yml", "notes.txt", "../escape.yml"} {
		_, err := store.Load(name)
		if !errors.Is(err, templates.ErrNotFound) {
			t.Fatalf("load %q error = %v, want ErrNotFound", name, err)
		}
		var nf *templates.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("load %q error type = %T", name, err)
		}
	}
}

func TestDirStoreMissingDirListsEmpty(t *testing.T) {
	store := templates.NewDirStore(filepath.Join(t.TempDir(), "nope"))
	names, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("names = %v, want none", names)
	}
}

func TestFSStore(t *testing.T) {
	fsys := fstest.MapFS{
		"webapp.yml":        {Data: []byte("WebApp:\n  name: demo\n")},
		"nested/deep.yaml":  {Data: []byte("Deep:\n  x: 1\n")},
		"nested/readme.md":  {Data: []byte("docs")},
		"toplevel-skip.txt": {Data: []byte("skip")},
	}

	store := templates.NewFSStore(fsys)

	names, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"nested/deep.yaml", "webapp.yml"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	text, err := store.Load("nested/deep.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != "Deep:\n  x: 1\n" {
		t.Fatalf("loaded text = %q", text)
	}

	if _, err := store.Load("missing.yml"); !errors.Is(err, templates.ErrNotFound) {
		t.Fatalf("missing template error = %v, want ErrNotFound", err)
	}
}
