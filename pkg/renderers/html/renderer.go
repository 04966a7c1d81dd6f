// Package html renders a read-only preview of a form model as a standalone
// HTML document. Templates are pongo2 and ship embedded; every string that
// reaches the page is passed through a bluemonday policy first.
package html

import (
	"bytes"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-yamlform/internal/labels"
	"github.com/goliatone/go-yamlform/pkg/form"
	"github.com/goliatone/go-yamlform/pkg/schema"
)

const defaultTemplate = "templates/form.tpl"

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithTemplates swaps the embedded template bundle for a caller-supplied one.
func WithTemplates(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.files = files
		}
	}
}

// WithTemplateName selects which template in the bundle renders the preview.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.tplName = name
		}
	}
}

// WithPolicy overrides the sanitizer. The default is the strict policy, which
// strips all markup from labels and values.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// Renderer turns a form model into an HTML preview page.
type Renderer struct {
	files   fs.FS
	tplName string
	policy  *bluemonday.Policy

	mu    sync.Mutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

// New constructs a renderer over the embedded templates.
func New(options ...Option) *Renderer {
	r := &Renderer{
		files:   embeddedTemplates,
		tplName: defaultTemplate,
		policy:  bluemonday.StrictPolicy(),
		cache:   make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.set = pongo2.NewSet("yamlform", pongo2.NewFSLoader(r.files))
	return r
}

// Render produces the preview page for the model's current values. When
// yamlText is non-empty it is shown verbatim in a trailing code block, so
// callers typically pass the export engine's output for the same model.
func (r *Renderer) Render(m *form.Model, yamlText string) (string, error) {
	if m == nil || m.Schema() == nil {
		return "", fmt.Errorf("html: model with a loaded schema is required")
	}

	sections, err := r.sections(m)
	if err != nil {
		return "", err
	}

	tmpl, err := r.template(r.tplName)
	if err != nil {
		return "", err
	}

	ctx := pongo2.Context{
		"title":    r.clean(labels.Humanize(m.RootKey())),
		"sections": sections,
		"yaml":     r.clean(yamlText),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("html: execute template %q: %w", r.tplName, err)
	}
	return buf.String(), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", name, err)
	}
	r.cache[name] = tmpl
	return tmpl, nil
}

// sections groups the model's fields the same way the other renderers do:
// one section per category for tabbed templates, a single unnamed section
// otherwise.
func (r *Renderer) sections(m *form.Model) ([]map[string]any, error) {
	sch := m.Schema()
	root := &sch.Root

	if root.Kind != schema.KindMapping {
		fields, err := r.fields(m, root, nil, "")
		if err != nil {
			return nil, err
		}
		return []map[string]any{{"title": "", "fields": fields}}, nil
	}

	if sch.Tabbed {
		out := make([]map[string]any, 0, len(root.Children))
		for i := range root.Children {
			category := &root.Children[i]
			var fields []map[string]any
			for j := range category.Children {
				child := &category.Children[j]
				rows, err := r.fields(m, child, form.Path{category.Key, child.Key}, "")
				if err != nil {
					return nil, err
				}
				fields = append(fields, rows...)
			}
			out = append(out, map[string]any{
				"title":  r.clean(labels.TabTitle(category.Key)),
				"fields": fields,
			})
		}
		return out, nil
	}

	var fields []map[string]any
	for i := range root.Children {
		child := &root.Children[i]
		rows, err := r.fields(m, child, form.Path{child.Key}, "")
		if err != nil {
			return nil, err
		}
		fields = append(fields, rows...)
	}
	return []map[string]any{{"title": "", "fields": fields}}, nil
}

// fields flattens one schema field into display rows. Nested mappings and
// list elements contribute a label prefix instead of nested markup.
func (r *Renderer) fields(m *form.Model, field *schema.Field, path form.Path, prefix string) ([]map[string]any, error) {
	label := prefix + labels.Humanize(field.Key)
	if field.Key == "" {
		label = prefix + "Value"
	}

	switch {
	case field.Kind == schema.KindMapping:
		var out []map[string]any
		for i := range field.Children {
			child := &field.Children[i]
			rows, err := r.fields(m, child, path.Child(child.Key), label+" / ")
			if err != nil {
				return nil, err
			}
			out = append(out, rows...)
		}
		return out, nil

	case field.Kind == schema.KindList && field.Elem == schema.KindMapping:
		var out []map[string]any
		for i := range field.Children {
			elem := &field.Children[i]
			elemPrefix := fmt.Sprintf("%s #%d / ", label, i+1)
			for j := range elem.Children {
				child := &elem.Children[j]
				rows, err := r.fields(m, child, path.Child(strconv.Itoa(i)).Child(child.Key), elemPrefix)
				if err != nil {
					return nil, err
				}
				out = append(out, rows...)
			}
		}
		return out, nil

	case field.Kind == schema.KindList:
		value, err := m.Get(path)
		if err != nil {
			return nil, err
		}
		var items []string
		if elems, ok := value.([]any); ok {
			for _, e := range elems {
				items = append(items, r.clean(formatScalar(e)))
			}
		}
		return []map[string]any{{
			"label": r.clean(label),
			"list":  true,
			"items": items,
		}}, nil

	default:
		value, err := m.Get(path)
		if err != nil {
			return nil, err
		}
		return []map[string]any{{
			"label": r.clean(label),
			"list":  false,
			"value": r.clean(formatScalar(value)),
		}}, nil
	}
}

func (r *Renderer) clean(s string) string {
	return r.policy.Sanitize(s)
}

func formatScalar(value any) string {
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
