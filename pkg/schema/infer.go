package schema

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Infer parses a YAML template and builds its field tree. It fails with an
// *Error when the document does not parse, the root is not a mapping, the
// document has zero or more than one top-level key, any mapping key is not
// a string, or a sequence mixes scalar and mapping elements.
func Infer(text string) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, schemaErrorf("", 0, "parse template: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, schemaErrorf("", 0, "document is empty")
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, schemaErrorf("", root.Line, "document root is not a mapping")
	}
	if len(root.Content) != 2 {
		return nil, schemaErrorf("", root.Line, "document must have exactly one top-level key, got %d", len(root.Content)/2)
	}

	keyNode := root.Content[0]
	if keyNode.ShortTag() != "!!str" {
		return nil, schemaErrorf("", keyNode.Line, "top-level key is not a string")
	}
	rootKey := keyNode.Value

	field, err := walk(root.Content[1], rootKey, 0, rootKey)
	if err != nil {
		return nil, err
	}

	return &Schema{
		RootKey: rootKey,
		Root:    field,
		Tabbed:  isCategoryStructure(field),
	}, nil
}

// isCategoryStructure reports the tab heuristic: a mapping root whose every
// child is itself a mapping. A mapping that happens to nest this way with no
// tab intent is still grouped; the flag is presentational only.
func isCategoryStructure(root Field) bool {
	if root.Kind != KindMapping || len(root.Children) == 0 {
		return false
	}
	for i := range root.Children {
		if root.Children[i].Kind != KindMapping {
			return false
		}
	}
	return true
}

func walk(n *yaml.Node, key string, order int, path string) (Field, error) {
	n = resolveAlias(n)
	field := Field{Key: key, OrderIndex: order, Line: n.Line}

	switch n.Kind {
	case yaml.ScalarNode:
		value, kind := scalarValue(n)
		field.Kind = kind
		field.Default = value
		return field, nil

	case yaml.SequenceNode:
		return walkSequence(n, field, path)

	case yaml.MappingNode:
		return walkMapping(n, field, path)

	default:
		return Field{}, schemaErrorf(path, n.Line, "unsupported node")
	}
}

func walkMapping(n *yaml.Node, field Field, path string) (Field, error) {
	field.Kind = KindMapping
	seen := make(map[string]struct{}, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := resolveAlias(n.Content[i])
		if keyNode.ShortTag() != "!!str" {
			return Field{}, schemaErrorf(path, keyNode.Line, "mapping key is not a string")
		}
		key := keyNode.Value
		if _, dup := seen[key]; dup {
			return Field{}, schemaErrorf(path, keyNode.Line, "duplicate mapping key %q", key)
		}
		seen[key] = struct{}{}

		child, err := walk(n.Content[i+1], key, i/2, path+"."+key)
		if err != nil {
			return Field{}, err
		}
		field.Children = append(field.Children, child)
	}
	return field, nil
}

func walkSequence(n *yaml.Node, field Field, path string) (Field, error) {
	field.Kind = KindList

	allScalar := true
	for _, elem := range n.Content {
		if resolveAlias(elem).Kind != yaml.ScalarNode {
			allScalar = false
			break
		}
	}

	if allScalar {
		values := make([]any, 0, len(n.Content))
		for _, elem := range n.Content {
			value, _ := scalarValue(resolveAlias(elem))
			values = append(values, value)
		}
		elem, _ := ElemKind(values)
		if elem == KindString {
			// Mixed element kinds fall back to string; keep the raw
			// scalar text so defaults match the frozen element kind.
			for i, raw := range n.Content {
				if _, kind := scalarValue(resolveAlias(raw)); kind != KindString {
					values[i] = resolveAlias(raw).Value
				}
			}
		}
		field.Elem = elem
		field.Default = values
		return field, nil
	}

	field.Elem = KindMapping
	for i, elem := range n.Content {
		resolved := resolveAlias(elem)
		if resolved.Kind != yaml.MappingNode {
			return Field{}, schemaErrorf(elemPath(path, i), resolved.Line, "sequence mixes scalar and mapping elements")
		}
		child, err := walk(resolved, "", i, elemPath(path, i))
		if err != nil {
			return Field{}, err
		}
		field.Children = append(field.Children, child)
	}
	return field, nil
}

func elemPath(path string, index int) string {
	return path + "." + strconv.Itoa(index)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// scalarValue decodes a scalar node by its resolved tag. Unparseable values
// and nulls fall back to the string kind; null becomes the empty string so
// it seeds an unset field.
func scalarValue(n *yaml.Node) (any, Kind) {
	switch n.ShortTag() {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b, KindBool
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, KindInt
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f, KindFloat
		}
	case "!!null":
		return "", KindString
	}
	return n.Value, KindString
}
