package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
)

// Editor walks a form model's schema in document order and collects values
// through the prompt driver. Every write goes through form.Model.Set, so
// the editor can never bypass the frozen field kinds.
type Editor struct {
	driver  PromptDriver
	labeler func(string) string
}

// New constructs an editor with the survey-backed driver by default.
func New(options ...Option) *Editor {
	e := &Editor{
		driver:  newSurveyDriver(),
		labeler: Label,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Run prompts for every field of the model, in template order. Category
// templates are grouped per tab with a section banner; the grouping is
// presentational and does not change which fields get prompted.
func (e *Editor) Run(ctx context.Context, m *form.Model) error {
	if ctx == nil {
		return fmt.Errorf("tui: context is required")
	}
	sch := m.Schema()
	if sch == nil {
		return fmt.Errorf("tui: model has no schema loaded")
	}

	root := &sch.Root
	if root.Kind != schema.KindMapping {
		return e.promptField(ctx, m, root, nil)
	}

	if sch.Tabbed {
		for i := range root.Children {
			category := &root.Children[i]
			if err := e.driver.Info(ctx, "── "+TabTitle(category.Key)+" ──"); err != nil {
				return err
			}
			if err := e.promptChildren(ctx, m, category, form.Path{category.Key}); err != nil {
				return err
			}
		}
		return nil
	}
	return e.promptChildren(ctx, m, root, nil)
}

func (e *Editor) promptChildren(ctx context.Context, m *form.Model, field *schema.Field, base form.Path) error {
	for i := range field.Children {
		child := &field.Children[i]
		if err := e.promptField(ctx, m, child, base.Child(child.Key)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) promptField(ctx context.Context, m *form.Model, field *schema.Field, path form.Path) error {
	switch {
	case field.Kind == schema.KindMapping:
		if err := e.driver.Info(ctx, e.label(field)+":"); err != nil {
			return err
		}
		return e.promptChildren(ctx, m, field, path)

	case field.Kind == schema.KindList && field.Elem == schema.KindMapping:
		for i := range field.Children {
			elem := &field.Children[i]
			if err := e.driver.Info(ctx, fmt.Sprintf("%s #%d:", e.label(field), i+1)); err != nil {
				return err
			}
			if err := e.promptChildren(ctx, m, elem, path.Child(strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil

	case field.Kind == schema.KindList:
		return e.promptList(ctx, m, field, path)

	case field.Kind == schema.KindBool:
		return e.promptBool(ctx, m, field, path)

	case field.Kind == schema.KindInt, field.Kind == schema.KindFloat:
		return e.promptNumber(ctx, m, field, path)

	default:
		return e.promptString(ctx, m, field, path)
	}
}

func (e *Editor) promptString(ctx context.Context, m *form.Model, field *schema.Field, path form.Path) error {
	current, err := m.Get(path)
	if err != nil {
		return err
	}
	response, err := e.driver.Input(ctx, InputConfig{
		Message: e.label(field),
		Default: formatValue(current),
	})
	if err != nil {
		return err
	}
	return m.Set(path, response)
}

func (e *Editor) promptBool(ctx context.Context, m *form.Model, field *schema.Field, path form.Path) error {
	current, err := m.Get(path)
	if err != nil {
		return err
	}
	defaultVal, _ := current.(bool)
	response, err := e.driver.Confirm(ctx, ConfirmConfig{
		Message: e.label(field),
		Default: defaultVal,
	})
	if err != nil {
		return err
	}
	return m.Set(path, response)
}

func (e *Editor) promptNumber(ctx context.Context, m *form.Model, field *schema.Field, path form.Path) error {
	current, err := m.Get(path)
	if err != nil {
		return err
	}

	for {
		response, err := e.driver.Input(ctx, InputConfig{
			Message: e.label(field),
			Default: formatValue(current),
			Help:    "leave empty to unset",
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(response) == "" {
			return m.Set(path, "")
		}

		var value any
		if field.Kind == schema.KindInt {
			parsed, err := strconv.ParseInt(strings.TrimSpace(response), 10, 64)
			if err != nil {
				if err := e.driver.Info(ctx, fmt.Sprintf("Invalid %s: not an integer", path)); err != nil {
					return err
				}
				continue
			}
			value = parsed
		} else {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(response), 64)
			if err != nil {
				if err := e.driver.Info(ctx, fmt.Sprintf("Invalid %s: not a number", path)); err != nil {
					return err
				}
				continue
			}
			value = parsed
		}

		if err := m.Set(path, value); err != nil {
			if infoErr := e.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", path, err)); infoErr != nil {
				return infoErr
			}
			continue
		}
		return nil
	}
}

// promptList multi-selects over the template's own options, mirroring how
// the schema seeded the list: chosen entries keep their original typed
// values.
func (e *Editor) promptList(ctx context.Context, m *form.Model, field *schema.Field, path form.Path) error {
	options, _ := field.Default.([]any)
	if len(options) == 0 {
		return nil
	}

	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = formatValue(option)
	}

	current, err := m.Get(path)
	if err != nil {
		return err
	}
	var defaults []int
	if values, ok := current.([]any); ok {
		selected := make(map[string]struct{}, len(values))
		for _, v := range values {
			selected[formatValue(v)] = struct{}{}
		}
		for i, label := range labels {
			if _, ok := selected[label]; ok {
				defaults = append(defaults, i)
			}
		}
	}

	indices, err := e.driver.MultiSelect(ctx, SelectConfig{
		Message:  e.label(field),
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}

	chosen := make([]any, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			chosen = append(chosen, options[idx])
		}
	}
	return m.Set(path, chosen)
}

func (e *Editor) label(field *schema.Field) string {
	if field.Key == "" {
		return "Item"
	}
	return e.labeler(field.Key)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
