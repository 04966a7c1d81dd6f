// Package schema turns an arbitrary YAML template document into an ordered,
// typed field tree. Parsing goes through yaml.Node so the document's key
// order and line numbers survive into the tree; a plain map decode would
// lose both. Kinds are frozen at inference time: later stages match on the
// closed Kind enum instead of re-inspecting runtime types.
package schema
