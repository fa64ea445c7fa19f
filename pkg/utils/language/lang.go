// package language validates the language codes players accept for captions,
// interface language and text tracks.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag is a parsed language code.
type Tag language.Tag

// Parse reads an ISO 639-1 code or a BCP 47 locale. Underscore separators
// (fr_CA) are accepted.
func Parse(s string) (Tag, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	t, err := language.Parse(s)
	if err != nil {
		return Tag(language.Und), err
	}
	return Tag(t), nil
}

// IsTag reports whether s is a usable language code. The undetermined tag
// "und" is rejected.
func IsTag(s string) bool {
	t, err := Parse(s)
	if err != nil {
		return false
	}
	return language.Tag(t) != language.Und
}

// textTrackKinds are the kinds a text track may be qualified with.
var textTrackKinds = map[string]struct{}{
	"captions":  {},
	"subtitles": {},
}

// IsTextTrack reports whether s names a text track: a language code (en), a
// locale (en-US) or a language code and kind (en.captions).
func IsTextTrack(s string) bool {
	code, kind, hasKind := strings.Cut(strings.TrimSpace(s), ".")
	if hasKind {
		if _, ok := textTrackKinds[strings.ToLower(kind)]; !ok {
			return false
		}
	}
	return IsTag(code)
}
