// Package templates renders the admin pages. Pages are html/template sets
// exposed as templ components so handlers render them the same way as any
// other component.
package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/viewtypes"
)

//go:embed html/*.gohtml
var files embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"pageHeading":  func() string { return viewtypes.PageHeading },
	"infoBoxClass": func() string { return viewtypes.InfoBoxClass },
	"inputClass":   func() string { return viewtypes.InputClass },
	"buttonClass":  func() string { return viewtypes.ButtonClass },
	"flashClass":   viewtypes.FlashClass,
	"cachePanelID": func() string { return CachePanelID },
}).ParseFS(files, "html/*.gohtml"))

// Chrome is the data every full page shares.
type Chrome struct {
	Title    string
	Lang     string
	Username string
	Flashes  []auth.Flash
	StyleURL string
}

type LoginPage struct {
	Chrome
	Error string
	// Attempted is the username echoed back after a failed attempt.
	Attempted string
}

// CachePanel is the fragment patched into #video-markup-cache.
type CachePanel struct {
	Cache        *FieldView
	EmptyMessage string
	RefreshURL   string
	RefreshLabel string
}

type VideoMarkupPage struct {
	Chrome
	Heading     string
	Action      string
	SubmitLabel string
	Fields      []FieldView
	CachePanel  CachePanel
	AceEnabled  bool
	ScriptURL   string
}

func Login(page LoginPage) templ.Component {
	if page.Title == "" {
		page.Title = "Sign in"
	}
	return templ.FromGoHTML(pages.Lookup("login"), page)
}

func VideoMarkup(page VideoMarkupPage) templ.Component {
	return templ.FromGoHTML(pages.Lookup("video-markup"), page)
}

func CachePanelFragment(panel CachePanel) templ.Component {
	return templ.FromGoHTML(pages.Lookup("cache-panel"), panel)
}
