package templates

import (
	"html/template"
	"sort"
	"strings"

	"thirdcoast.systems/videomarkup/cmd/web/viewtypes"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
	"thirdcoast.systems/videomarkup/pkg/utils/markdown"
)

// CachePanelID is the element id the cache panel is patched into.
const CachePanelID = "video-markup-cache"

// FieldView is a compiled field prepared for rendering.
type FieldView struct {
	Kind        markupconfig.FieldType
	Name        string
	ID          string
	Label       string
	Description template.HTML
	Notes       template.HTML
	Icon        string
	Open        bool
	Column      string
	Value       string
	Placeholder string
	Rows        int
	Attrs       template.HTMLAttr
	Options     []OptionView
	Markup      template.HTML
	Children    []FieldView
}

type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// NewFieldViews prepares every top-level field of form except the cache
// panel, which renders on its own.
func NewFieldViews(form *markupconfig.Form) []FieldView {
	views := make([]FieldView, 0, len(form.Fields))
	for _, f := range form.Fields {
		if f.Common().Name == cacheFieldName {
			continue
		}
		views = append(views, newFieldView(form, f))
	}
	return views
}

const cacheFieldName = "cache"

// NewCacheView returns the cache panel of form, or nil when the form has none.
func NewCacheView(form *markupconfig.Form) *FieldView {
	f, ok := form.Lookup(cacheFieldName)
	if !ok {
		return nil
	}
	v := newFieldView(form, f)
	return &v
}

func newFieldView(form *markupconfig.Form, f markupconfig.Field) FieldView {
	b := f.Common()
	v := FieldView{
		Kind:        f.Kind(),
		Name:        b.Name,
		ID:          b.ID,
		Label:       b.Label,
		Description: markdown.New(b.Description).Inline(),
		Notes:       markdown.New(b.Notes).Inline(),
		Icon:        b.Icon,
		Column:      viewtypes.ColumnClass(b.ColumnWidth),
	}
	if v.ID == "" {
		v.ID = "f_" + b.Name
	}
	if b.Name != "" {
		v.Value = form.Value(b.Name)
	}

	switch t := f.(type) {
	case *markupconfig.SelectField:
		for _, o := range t.Options {
			v.Options = append(v.Options, OptionView{Value: o.Value, Label: o.Label, Selected: o.Value == v.Value})
		}
	case *markupconfig.TextField:
		v.Placeholder = t.Placeholder
	case *markupconfig.TextareaField:
		v.Rows = t.Rows
		v.Attrs = attrs(t.Attrs)
	case *markupconfig.MarkupField:
		v.Markup = t.Value
	case *markupconfig.Fieldset:
		for _, child := range t.Children {
			v.Children = append(v.Children, newFieldView(form, child))
		}
	}

	v.Open = isOpen(b.Collapsed, v)
	return v
}

// isOpen resolves the collapse state. A blank-collapsed field opens once it
// has a value; a fieldset opens when any child is open.
func isOpen(c markupconfig.Collapse, v FieldView) bool {
	switch c {
	case markupconfig.CollapsedNo:
		return true
	case markupconfig.CollapsedBlank:
		if v.Kind == markupconfig.FieldFieldset {
			for _, child := range v.Children {
				if child.Value != "" {
					return true
				}
			}
			return false
		}
		return v.Value != ""
	default:
		return false
	}
}

func attrs(m map[string]string) template.HTMLAttr {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		if !strings.HasPrefix(k, "data-") {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(template.HTMLEscapeString(k))
		sb.WriteString(`="`)
		sb.WriteString(template.HTMLEscapeString(m[k]))
		sb.WriteString(`"`)
	}
	return template.HTMLAttr(strings.TrimSpace(sb.String()))
}
