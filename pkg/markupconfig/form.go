package markupconfig

import (
	"bytes"
	"context"
	"html/template"
	"strconv"

	"github.com/dustin/go-humanize"
)

// ClearCacheField is the name of the submit button that triggers the
// clear-cache action.
const ClearCacheField = "clearCache"

// CacheStore is the key/value cache the filter runtime writes embed results to.
type CacheStore interface {
	// CountByPrefix returns the number of entries whose name starts with prefix.
	CountByPrefix(ctx context.Context, prefix string) (int, error)
	// ClearFor deletes every entry owned by owner.
	ClearFor(ctx context.Context, owner string) error
}

// CacheSizer is implemented by stores that can report the stored payload
// size of a prefix.
type CacheSizer interface {
	SizeByPrefix(ctx context.Context, prefix string) (int64, error)
}

// CachePrefix returns the entry name prefix of an owner.
func CachePrefix(owner string) string {
	return owner + "__"
}

// AceOptions configures the ACE code editor attached to the markup template.
type AceOptions struct {
	Theme      string
	Keybinding string
	Height     int
	Behaviors  bool
}

// FormInput is everything the form builder reads.
type FormInput struct {
	Settings   Settings
	CacheCount int
	// CacheBytes is the payload size of the cached entries, 0 when unknown.
	CacheBytes int64
	// Ace is nil when no code editor is available.
	Ace *AceOptions
}

// Form is the complete module configuration form.
type Form struct {
	Fields   []Field  `json:"fields"`
	Settings Settings `json:"-"`
}

// BuildForm assembles the configuration form. Fields are compiled fresh on
// every call.
func BuildForm(c *Compiler, in FormInput) *Form {
	p := c.Printer()
	f := &Form{Settings: in.Settings}

	tpl := &TextareaField{
		Base: Base{
			Name:      KeyMarkupTpl,
			ID:        "hc_code",
			Label:     p.Sprintf("Markup"),
			Notes:     p.Sprintf("Please refer to %s for details on how to use this field.", "README.md"),
			Icon:      "code",
			Collapsed: CollapsedBlank,
		},
		Rows:  10,
		Attrs: map[string]string{},
	}
	if in.Ace != nil {
		behaviors := 0
		if in.Ace.Behaviors {
			behaviors = 1
		}
		tpl.Attrs["data-theme"] = in.Ace.Theme
		tpl.Attrs["data-keybinding"] = in.Ace.Keybinding
		tpl.Attrs["data-height"] = strconv.Itoa(in.Ace.Height)
		tpl.Attrs["data-behaviors"] = strconv.Itoa(behaviors)
	}
	f.Fields = append(f.Fields, tpl)

	video := &Fieldset{Base: Base{Label: p.Sprintf("Video Options"), Icon: "cog"}}
	video.Add(
		&IntegerField{Base: Base{
			Name:        KeyMaxWidth,
			Label:       p.Sprintf("Max Width"),
			Icon:        "arrows-h",
			ColumnWidth: 50,
		}},
		&IntegerField{Base: Base{
			Name:        KeyMaxHeight,
			Label:       p.Sprintf("Max Height"),
			Icon:        "arrows-v",
			ColumnWidth: 50,
		}},
		&TextField{Base: Base{
			Name:        KeyEmptyValue,
			Label:       p.Sprintf("Empty Value"),
			Description: p.Sprintf("This is the value that will be rendered if no response is received from the oEmbed endpoint."),
			Icon:        "exclamation-circle",
			Collapsed:   CollapsedBlank,
		}},
	)
	f.Fields = append(f.Fields, video)

	for _, provider := range Providers() {
		f.Fields = append(f.Fields, c.CompileProvider(provider))
	}

	if in.CacheCount > 0 {
		f.Fields = append(f.Fields, CachePanel(c, in.CacheCount, in.CacheBytes))
	}

	return f
}

var clearButton = template.Must(template.New("clear").Parse(
	`<button type="submit" name="{{.Name}}" id="{{.Name}}" value="1" class="ui-button">{{.Label}}</button>`,
))

// CachePanel returns the markup field that reports the number of cached
// videos and carries the clear-cache button.
func CachePanel(c *Compiler, count int, size int64) *MarkupField {
	p := c.Printer()

	var buf bytes.Buffer
	_ = clearButton.Execute(&buf, struct{ Name, Label string }{
		Name:  ClearCacheField,
		Label: p.Sprintf(msgClearCache),
	})

	field := &MarkupField{
		Base: Base{
			Name:        "cache",
			Label:       p.Sprintf(msgCache),
			Description: CacheCountMessage(c, count),
			Icon:        "files-o",
			Collapsed:   CollapsedYes,
		},
		Value: template.HTML(buf.String()),
	}
	if size > 0 {
		field.Notes = p.Sprintf(msgCacheSize, humanize.Bytes(uint64(size)))
	}
	return field
}

// CacheCountMessage returns the pluralized "There are N cached videos."
// sentence.
func CacheCountMessage(c *Compiler, count int) string {
	return c.Printer().Sprintf(msgCachedVideos, count)
}

// Walk visits every value-carrying field of the form in render order.
func (f *Form) Walk(fn func(Field)) {
	root := &Fieldset{Children: f.Fields}
	root.Walk(fn)
}

// Lookup returns the field with the given name.
func (f *Form) Lookup(name string) (Field, bool) {
	var found Field
	f.Walk(func(field Field) {
		if found == nil && field.Common().Name == name {
			found = field
		}
	})
	return found, found != nil
}

// Value returns the current value of a named field.
func (f *Form) Value(name string) string {
	return f.Settings.Value(name)
}
