package markupconfig

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/message"
)

// Namespace groups the embed options of one video provider.
type Namespace string

const (
	NamespaceYouTube Namespace = "yt"
	NamespaceVimeo   Namespace = "vm"
)

// Descriptor is the authored, partial definition of one provider option.
//
// A zero Type compiles to a select. A select with nil Options gets the
// empty/Disable/Enable choices. A nil Collapsed compiles to CollapsedBlank.
type Descriptor struct {
	Label       string
	Description string
	Notes       string
	Type        FieldType
	Options     []Option
	Collapsed   *Collapse
	Placeholder string
	Validate    string
}

// OptionEntry pairs an option key with its descriptor. Provider tables are
// ordered slices of entries so the rendered form keeps authoring order.
type OptionEntry struct {
	Key string
	Descriptor
}

// Provider is the static option table of one video provider.
type Provider struct {
	Namespace Namespace
	Label     string
	Icon      string
	InfoURL   string
	Options   []OptionEntry
}

// Compiler turns descriptors into render-ready fields. It holds no state
// besides the printer used for the default option labels.
type Compiler struct {
	p *message.Printer
}

func NewCompiler(p *message.Printer) *Compiler {
	if p == nil {
		p = NewPrinter("")
	}
	return &Compiler{p: p}
}

// Printer returns the printer the compiler localizes with.
func (c *Compiler) Printer() *message.Printer {
	return c.p
}

// FieldName returns the settings key of an option: "<namespace>_<key>".
func FieldName(ns Namespace, key string) string {
	return string(ns) + "_" + key
}

// BinaryOptions returns the default choices of a select option. The empty
// choice leaves the option unset so the provider default applies.
func (c *Compiler) BinaryOptions() []Option {
	return []Option{
		{Value: "", Label: ""},
		{Value: "0", Label: c.p.Sprintf(msgDisable)},
		{Value: "1", Label: c.p.Sprintf(msgEnable)},
	}
}

// text localizes authored descriptor text. Strings with a verb are kept
// as written since they carry no arguments.
func (c *Compiler) text(s string) string {
	if s == "" || strings.Contains(s, "%") {
		return s
	}
	return c.p.Sprintf(s)
}

// Compile normalizes a single descriptor into a field named
// "<namespace>_<key>". Descriptor tables are static, so an unknown Type
// panics.
func (c *Compiler) Compile(ns Namespace, key string, d Descriptor) Field {
	base := Base{
		Name:        FieldName(ns, key),
		Label:       c.text(d.Label),
		Description: c.text(d.Description),
		Notes:       c.text(d.Notes),
		Collapsed:   CollapsedBlank,
	}
	if d.Collapsed != nil {
		base.Collapsed = *d.Collapsed
	}

	switch d.Type {
	case FieldText:
		return &TextField{Base: base, Placeholder: d.Placeholder, Validate: d.Validate}
	case FieldInteger:
		return &IntegerField{Base: base}
	case FieldTextarea:
		return &TextareaField{Base: base}
	case FieldMarkup:
		return &MarkupField{Base: base}
	case FieldFieldset:
		return &Fieldset{Base: base}
	case "", FieldSelect:
		if d.Options == nil {
			return &SelectField{Base: base, Options: c.BinaryOptions()}
		}
		options := lo.Map(d.Options, func(o Option, _ int) Option {
			return Option{Value: o.Value, Label: c.text(o.Label)}
		})
		return &SelectField{Base: base, Options: options}
	default:
		panic(fmt.Sprintf("markupconfig: unknown field type %q for %s", d.Type, base.Name))
	}
}

// CompileAll compiles an ordered option table, preserving its order.
func (c *Compiler) CompileAll(ns Namespace, entries []OptionEntry) []Field {
	return lo.Map(entries, func(e OptionEntry, _ int) Field {
		return c.Compile(ns, e.Key, e.Descriptor)
	})
}

// CompileProvider compiles a provider table into its collapsed fieldset.
func (c *Compiler) CompileProvider(p Provider) *Fieldset {
	fs := &Fieldset{Base: Base{
		Label:     c.p.Sprintf(p.Label),
		Icon:      p.Icon,
		Collapsed: CollapsedYes,
	}}
	if p.InfoURL != "" {
		fs.Notes = c.p.Sprintf(msgMoreInformation, "["+p.InfoURL+"]("+p.InfoURL+")")
	}
	return fs.Add(c.CompileAll(p.Namespace, p.Options)...)
}

func collapse(c Collapse) *Collapse {
	return &c
}
