package schema

// Field is one position in the inferred tree. OrderIndex records the node's
// position among its siblings as written in the source document; every later
// traversal (value seeding, projection, export) iterates by it rather than
// trusting container order.
type Field struct {
	// Key is the mapping key at this position. List elements have no key.
	Key string
	// Kind is the frozen value shape.
	Kind Kind
	// Elem is the element kind when Kind is KindList. Scalar element kinds
	// mean a flat list; KindMapping means a list of mapping elements whose
	// per-element shapes live in Children.
	Elem Kind
	// OrderIndex is the dense 0..n-1 position among siblings.
	OrderIndex int
	// Default is the value the template carried at this position. Scalars
	// hold their decoded value, scalar lists a []any of decoded elements.
	// Defaults are never mutated after inference.
	Default any
	// Children holds mapping children (in document order) or, for lists of
	// mappings, one element schema per list entry.
	Children []Field
	// Line is the source line the node started on, for diagnostics.
	Line int
}

// Schema is the result of inferring a template: the original root key and
// the field tree beneath it.
type Schema struct {
	// RootKey is the single top-level mapping key of the document.
	RootKey string
	// Root is the field describing the value under RootKey.
	Root Field
	// Tabbed reports the category heuristic: every child of the root is
	// itself a mapping, so presenters may group the children as tabs. The
	// flag changes how the tree is grouped for editing, never its
	// serialized shape.
	Tabbed bool
}

// Child returns the mapping child carrying the given key.
func (f *Field) Child(key string) (*Field, bool) {
	if f.Kind != KindMapping {
		return nil, false
	}
	for i := range f.Children {
		if f.Children[i].Key == key {
			return &f.Children[i], true
		}
	}
	return nil, false
}

// Leaf reports whether the field holds no nested fields of its own.
func (f *Field) Leaf() bool {
	return f.Kind.Scalar() || (f.Kind == KindList && f.Elem != KindMapping)
}
