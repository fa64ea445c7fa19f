package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Markdown wraps the help text of a form field (descriptions and notes).
// Single newlines are kept as line breaks.
type Markdown struct {
	// Source is the markdown source code.
	Source string
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.NoopenerLinks | blackfriday.Smartypants | blackfriday.SmartypantsDashes,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.HardLineBreak
	policy       = helpTextPolicy()
)

// helpTextPolicy allows inline formatting and links; help text never needs
// block elements beyond paragraphs and lists.
func helpTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "em", "strong", "code", "del", "ul", "ol", "li")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

func New(source string) Markdown {
	return Markdown{Source: source}
}

func (m Markdown) IsEmpty() bool {
	return len(bytes.TrimSpace([]byte(m.Source))) == 0
}

func (m Markdown) html() []byte {
	unsafe := blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	return bytes.TrimSpace(policy.SanitizeBytes(unsafe))
}

// Render converts the source into sanitized HTML.
func (m Markdown) Render() template.HTML {
	if m.IsEmpty() {
		return ""
	}
	return template.HTML(m.html())
}

// Inline renders a single paragraph without the surrounding <p> element, for
// use inside labels and buttons.
func (m Markdown) Inline() template.HTML {
	out := m.html()
	if bytes.HasPrefix(out, []byte("<p>")) && bytes.HasSuffix(out, []byte("</p>")) &&
		bytes.Count(out, []byte("<p>")) == 1 {
		out = out[len("<p>") : len(out)-len("</p>")]
	}
	return template.HTML(out)
}
