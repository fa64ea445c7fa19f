// Package markupconfig builds the admin configuration form of the Video Markup
// text filter: default settings, per-provider option tables, the option
// compiler and parsing of submitted values.
package markupconfig

import (
	"encoding/json"
	"html/template"
)

// FieldType discriminates the concrete field kinds a form can hold.
type FieldType string

const (
	FieldSelect   FieldType = "select"
	FieldText     FieldType = "text"
	FieldInteger  FieldType = "integer"
	FieldTextarea FieldType = "textarea"
	FieldMarkup   FieldType = "markup"
	FieldFieldset FieldType = "fieldset"
)

// Collapse controls how a field is initially presented.
type Collapse int

const (
	CollapsedNo  Collapse = 0
	CollapsedYes Collapse = 1
	// CollapsedBlank keeps the field closed while it holds no value.
	CollapsedBlank Collapse = 2
)

// Option is a single <option> of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Base carries the attributes every field kind shares.
type Base struct {
	Name        string   `json:"name,omitempty"`
	ID          string   `json:"id,omitempty"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Collapsed   Collapse `json:"collapsed"`
	ColumnWidth int      `json:"columnWidth,omitempty"`
}

// Field is one render-ready form element. The concrete type is one of
// *SelectField, *TextField, *IntegerField, *TextareaField, *MarkupField or
// *Fieldset.
type Field interface {
	Kind() FieldType
	Common() *Base
}

type SelectField struct {
	Base
	Options []Option `json:"options"`
}

type TextField struct {
	Base
	Placeholder string `json:"placeholder,omitempty"`
	// Validate is a validator tag run against submitted values.
	Validate string `json:"-"`
}

type IntegerField struct {
	Base
	Min int `json:"min"`
}

// TextareaField holds multi-line text such as the markup template.
// Attrs become data attributes on the rendered element.
type TextareaField struct {
	Base
	Rows  int               `json:"rows,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// MarkupField renders pre-built HTML and never takes a submitted value.
type MarkupField struct {
	Base
	Value template.HTML `json:"value"`
}

// Fieldset groups child fields under a common heading.
type Fieldset struct {
	Base
	Children []Field `json:"children"`
}

func (f *SelectField) Kind() FieldType   { return FieldSelect }
func (f *TextField) Kind() FieldType     { return FieldText }
func (f *IntegerField) Kind() FieldType  { return FieldInteger }
func (f *TextareaField) Kind() FieldType { return FieldTextarea }
func (f *MarkupField) Kind() FieldType   { return FieldMarkup }
func (f *Fieldset) Kind() FieldType      { return FieldFieldset }

func (f *SelectField) Common() *Base   { return &f.Base }
func (f *TextField) Common() *Base     { return &f.Base }
func (f *IntegerField) Common() *Base  { return &f.Base }
func (f *TextareaField) Common() *Base { return &f.Base }
func (f *MarkupField) Common() *Base   { return &f.Base }
func (f *Fieldset) Common() *Base      { return &f.Base }

// HasOption reports whether value is one of the select's option values.
func (f *SelectField) HasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Add appends children in order and returns the fieldset.
func (f *Fieldset) Add(children ...Field) *Fieldset {
	f.Children = append(f.Children, children...)
	return f
}

// Walk visits every non-fieldset field below f in render order.
func (f *Fieldset) Walk(fn func(Field)) {
	for _, child := range f.Children {
		if fs, ok := child.(*Fieldset); ok {
			fs.Walk(fn)
			continue
		}
		fn(child)
	}
}

// ---------------------------------------------------------------------------
// JSON encoding with a "type" discriminator
// ---------------------------------------------------------------------------

func marshalTyped(kind FieldType, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	t, _ := json.Marshal(kind)
	m["type"] = t
	return json.Marshal(m)
}

// The alias types drop the MarshalJSON method so marshalTyped does not recurse.

func (f *SelectField) MarshalJSON() ([]byte, error) {
	type alias SelectField
	return marshalTyped(f.Kind(), (*alias)(f))
}

func (f *TextField) MarshalJSON() ([]byte, error) {
	type alias TextField
	return marshalTyped(f.Kind(), (*alias)(f))
}

func (f *IntegerField) MarshalJSON() ([]byte, error) {
	type alias IntegerField
	return marshalTyped(f.Kind(), (*alias)(f))
}

func (f *TextareaField) MarshalJSON() ([]byte, error) {
	type alias TextareaField
	return marshalTyped(f.Kind(), (*alias)(f))
}

func (f *MarkupField) MarshalJSON() ([]byte, error) {
	type alias MarkupField
	return marshalTyped(f.Kind(), (*alias)(f))
}

func (f *Fieldset) MarshalJSON() ([]byte, error) {
	type alias Fieldset
	return marshalTyped(f.Kind(), (*alias)(f))
}
