package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
)

// setFromString writes a command-line value at a dotted path, coercing the
// text to the field's frozen kind first so the model sees a typed value.
func setFromString(m *form.Model, pathText, raw string) error {
	path := form.ParsePath(pathText)
	field, isElem, err := fieldAt(m.Schema(), path)
	if err != nil {
		return err
	}

	switch {
	case isElem:
		value, err := coerce(field.Elem, raw)
		if err != nil {
			return fmt.Errorf("--set %s: %w", pathText, err)
		}
		return m.Set(path, value)

	case field.Kind == schema.KindList && field.Elem != schema.KindMapping:
		// Whole-list assignment from a comma separated value.
		var values []any
		if raw != "" {
			for _, part := range strings.Split(raw, ",") {
				value, err := coerce(field.Elem, strings.TrimSpace(part))
				if err != nil {
					return fmt.Errorf("--set %s: %w", pathText, err)
				}
				values = append(values, value)
			}
		}
		return m.Set(path, values)

	case field.Kind.Scalar():
		value, err := coerce(field.Kind, raw)
		if err != nil {
			return fmt.Errorf("--set %s: %w", pathText, err)
		}
		return m.Set(path, value)

	default:
		return fmt.Errorf("--set %s: %s fields cannot be assigned directly", pathText, field.Kind)
	}
}

// fieldAt walks the schema along path. The second result reports that the
// path addresses one element inside a scalar list.
func fieldAt(sch *schema.Schema, path form.Path) (*schema.Field, bool, error) {
	if sch == nil {
		return nil, false, fmt.Errorf("no schema loaded")
	}
	field := &sch.Root
	for i, segment := range path {
		switch {
		case field.Kind == schema.KindMapping:
			child, ok := field.Child(segment)
			if !ok {
				return nil, false, fmt.Errorf("unknown path %q", path)
			}
			field = child

		case field.Kind == schema.KindList && field.Elem == schema.KindMapping:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(field.Children) {
				return nil, false, fmt.Errorf("unknown path %q", path)
			}
			field = &field.Children[idx]

		case field.Kind == schema.KindList:
			if _, err := strconv.Atoi(segment); err != nil || i != len(path)-1 {
				return nil, false, fmt.Errorf("unknown path %q", path)
			}
			return field, true, nil

		default:
			return nil, false, fmt.Errorf("unknown path %q", path)
		}
	}
	return field, false, nil
}

func coerce(kind schema.Kind, raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	switch kind {
	case schema.KindBool:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a bool", raw)
		}
		return value, nil
	case schema.KindInt:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return value, nil
	case schema.KindFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return value, nil
	default:
		return raw, nil
	}
}
