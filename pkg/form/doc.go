// Package form owns the editing state of one session: the immutable inferred
// schema plus a mirrored value tree seeded from the template's defaults.
// All access goes through path-addressed Get/Set; Set is type-checked
// against the frozen field kind and either fully succeeds or leaves the
// tree untouched.
package form
