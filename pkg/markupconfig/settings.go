package markupconfig

import (
	"strconv"
	"strings"
)

// Keys of the settings that are not provider options.
const (
	KeyMarkupTpl  = "markupTpl"
	KeyMaxWidth   = "maxWidth"
	KeyMaxHeight  = "maxHeight"
	KeyEmptyValue = "emptyValue"
)

const (
	DefaultMaxWidth  = 1280
	DefaultMaxHeight = 720
)

// Settings is the persisted configuration of the filter.
type Settings struct {
	EmptyValue string `validate:"max=2048"`
	MaxWidth   int    `validate:"gte=0"`
	MaxHeight  int    `validate:"gte=0"`
	MarkupTpl  string
	// Options holds provider option values keyed by field name (yt_autoplay).
	// Unset options are absent.
	Options map[string]string
}

// Defaults returns the settings of a freshly installed filter.
func Defaults() Settings {
	return Settings{
		EmptyValue: "",
		MaxWidth:   DefaultMaxWidth,
		MaxHeight:  DefaultMaxHeight,
		Options:    map[string]string{},
	}
}

// SettingsFromData reads persisted key/value data. Missing or malformed
// dimensions fall back to the defaults.
func SettingsFromData(data map[string]string) Settings {
	s := Defaults()
	for key, value := range data {
		switch key {
		case KeyEmptyValue:
			s.EmptyValue = value
		case KeyMarkupTpl:
			s.MarkupTpl = value
		case KeyMaxWidth:
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n >= 0 {
				s.MaxWidth = n
			}
		case KeyMaxHeight:
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n >= 0 {
				s.MaxHeight = n
			}
		default:
			if isOptionKey(key) && value != "" {
				s.Options[key] = value
			}
		}
	}
	return s
}

// Data flattens the settings for persistence. Unset options are omitted.
func (s Settings) Data() map[string]string {
	data := map[string]string{
		KeyEmptyValue: s.EmptyValue,
		KeyMaxWidth:   strconv.Itoa(s.MaxWidth),
		KeyMaxHeight:  strconv.Itoa(s.MaxHeight),
		KeyMarkupTpl:  s.MarkupTpl,
	}
	for key, value := range s.Options {
		if value == "" {
			continue
		}
		data[key] = value
	}
	return data
}

// Value returns the current value of a named field as submitted text.
func (s Settings) Value(name string) string {
	switch name {
	case KeyEmptyValue:
		return s.EmptyValue
	case KeyMarkupTpl:
		return s.MarkupTpl
	case KeyMaxWidth:
		return strconv.Itoa(s.MaxWidth)
	case KeyMaxHeight:
		return strconv.Itoa(s.MaxHeight)
	}
	return s.Options[name]
}

// Toggle reads a select option as a three-state value.
func (s Settings) Toggle(name string) Toggle {
	return ParseToggle(s.Options[name])
}

// Set stores an option value. An empty value unsets the option.
func (s *Settings) Set(name, value string) {
	if s.Options == nil {
		s.Options = map[string]string{}
	}
	if value == "" {
		delete(s.Options, name)
		return
	}
	s.Options[name] = value
}

func isOptionKey(key string) bool {
	return strings.HasPrefix(key, string(NamespaceYouTube)+"_") ||
		strings.HasPrefix(key, string(NamespaceVimeo)+"_")
}

// Toggle distinguishes an option that was never set from one explicitly
// disabled, so the provider default applies only to unset options.
type Toggle int

const (
	ToggleUnset Toggle = iota
	ToggleDisabled
	ToggleEnabled
)

// ParseToggle maps "" to ToggleUnset, "0" to ToggleDisabled and "1" to
// ToggleEnabled. Anything else is treated as unset.
func ParseToggle(v string) Toggle {
	switch strings.TrimSpace(v) {
	case "0":
		return ToggleDisabled
	case "1":
		return ToggleEnabled
	default:
		return ToggleUnset
	}
}

// String returns the persisted form of the toggle.
func (t Toggle) String() string {
	switch t {
	case ToggleDisabled:
		return "0"
	case ToggleEnabled:
		return "1"
	default:
		return ""
	}
}

// IsSet reports whether the toggle overrides the provider default.
func (t Toggle) IsSet() bool {
	return t != ToggleUnset
}
