package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-yamlform/pkg/schema"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := schema.NewMap()
	m.Set("zeta", int64(1))
	m.Set("alpha", int64(2))
	m.Set("beta", int64(3))
	m.Set("zeta", int64(9)) // replacement keeps position

	if diff := cmp.Diff([]string{"zeta", "alpha", "beta"}, m.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	if v, ok := m.Get("zeta"); !ok || v != int64(9) {
		t.Fatalf("zeta = %v, want 9", v)
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatal("lookup of missing key succeeded")
	}
}

func TestMapEqual(t *testing.T) {
	build := func() *schema.Map {
		inner := schema.NewMap()
		inner.Set("x", int64(1))
		m := schema.NewMap()
		m.Set("a", "one")
		m.Set("b", []any{int64(1), "two"})
		m.Set("c", inner)
		return m
	}

	if !build().Equal(build()) {
		t.Fatal("identical maps compare unequal")
	}

	reordered := schema.NewMap()
	reordered.Set("b", []any{int64(1), "two"})
	reordered.Set("a", "one")
	if build().Equal(reordered) {
		t.Fatal("maps with different key order compare equal")
	}

	intVsFloat := build()
	inner := schema.NewMap()
	inner.Set("x", float64(1))
	intVsFloat.Set("c", inner)
	if build().Equal(intVsFloat) {
		t.Fatal("int64 and float64 values compare equal")
	}
}

func TestFromNode(t *testing.T) {
	text := "root:\n  name: App\n  port: 8080\n  ratio: 0.5\n  active: true\n  tags:\n    - a\n    - b\n"

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	value, err := schema.FromNode(&doc)
	if err != nil {
		t.Fatalf("from node: %v", err)
	}

	top, ok := value.(*schema.Map)
	if !ok {
		t.Fatalf("value type = %T, want *schema.Map", value)
	}
	inner, _ := top.Get("root")

	want := schema.NewMap()
	want.Set("name", "App")
	want.Set("port", int64(8080))
	want.Set("ratio", 0.5)
	want.Set("active", true)
	want.Set("tags", []any{"a", "b"})

	if diff := cmp.Diff(want, inner); diff != "" {
		t.Fatalf("decoded value mismatch (-want +got):\n%s", diff)
	}
}
