package markupconfig

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. English text doubles as the key.
const (
	msgDisable         = "Disable"
	msgEnable          = "Enable"
	msgMoreInformation = "More information: %s"
	msgCachedVideos    = "There are %d cached videos."
	msgClearCache      = "Clear Cache"
	msgCache           = "Cache"
	msgCacheSize       = "Cached embed data: %s"
	MsgCacheCleared    = "Cache cleared"
	MsgSettingsSaved   = "Settings saved"
	MsgSettingsInvalid = "The settings contain errors."
	MsgMoreInvalid     = "%d more fields are invalid."
)

var supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(supported)

var messages = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	set := func(tag language.Tag, key string, msg ...catalog.Message) {
		if err := messages.Set(tag, key, msg...); err != nil {
			panic(err)
		}
	}

	set(language.English, msgCachedVideos, plural.Selectf(1, "%d",
		"=1", "There is %d cached video.",
		"other", "There are %d cached videos.",
	))

	set(language.German, msgDisable, catalog.String("Deaktivieren"))
	set(language.German, msgEnable, catalog.String("Aktivieren"))
	set(language.German, msgMoreInformation, catalog.String("Weitere Informationen: %s"))
	set(language.German, msgCacheSize, catalog.String("Zwischengespeicherte Einbettungsdaten: %s"))
	set(language.German, msgClearCache, catalog.String("Cache leeren"))
	set(language.German, MsgCacheCleared, catalog.String("Cache geleert"))
	set(language.German, MsgSettingsSaved, catalog.String("Einstellungen gespeichert"))
	set(language.German, MsgSettingsInvalid, catalog.String("Die Einstellungen enthalten Fehler."))
	set(language.German, "Video Markup", catalog.String("Video-Markup"))
	set(language.German, "Save", catalog.String("Speichern"))
	set(language.German, "Refresh", catalog.String("Aktualisieren"))
	set(language.German, "No cached videos.", catalog.String("Keine zwischengespeicherten Videos."))
	set(language.German, "Failed to clear cache", catalog.String("Cache konnte nicht geleert werden"))
	set(language.German, "Failed to save settings", catalog.String("Einstellungen konnten nicht gespeichert werden"))
	set(language.German, "Video Options", catalog.String("Video-Optionen"))
	set(language.German, "Max Width", catalog.String("Maximale Breite"))
	set(language.German, "Max Height", catalog.String("Maximale Höhe"))
	set(language.German, "Empty Value", catalog.String("Leerer Wert"))
	set(language.German, "Autoplay", catalog.String("Automatische Wiedergabe"))
	set(language.German, "Color", catalog.String("Farbe"))
	set(language.German, "Red", catalog.String("Rot"))
	set(language.German, "White", catalog.String("Weiß"))
	set(language.German, "Controls", catalog.String("Steuerelemente"))
	set(language.German, "Fullscreen", catalog.String("Vollbild"))
	set(language.German, "Interface Language", catalog.String("Sprache der Oberfläche"))
	set(language.German, "Related Videos", catalog.String("Ähnliche Videos"))
	set(language.German, "Loop", catalog.String("Endlosschleife"))
	set(language.German, "Muted", catalog.String("Stummgeschaltet"))
	set(language.German, "Title", catalog.String("Titel"))
	set(language.English, MsgMoreInvalid, plural.Selectf(1, "%d",
		"=1", "%d more field is invalid.",
		"other", "%d more fields are invalid.",
	))
	set(language.German, MsgMoreInvalid, plural.Selectf(1, "%d",
		"=1", "%d weiteres Feld ist ungültig.",
		"other", "%d weitere Felder sind ungültig.",
	))
	set(language.German, msgCachedVideos, plural.Selectf(1, "%d",
		"=1", "Es gibt %d zwischengespeichertes Video.",
		"other", "Es gibt %d zwischengespeicherte Videos.",
	))
}

// NewPrinter returns a printer for the best supported match of locale
// (a BCP 47 tag or an Accept-Language value). Unknown locales fall back to
// English.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(language.Make(MatchLocale(locale)), message.Catalog(messages))
}

// MatchLocale picks the best supported base language for the given
// preferences, most preferred first. Each may be a tag or an Accept-Language
// value.
func MatchLocale(prefs ...string) string {
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	return base.String()
}

// Translate localizes a fixed message key such as MsgCacheCleared.
func Translate(p *message.Printer, key string, args ...any) string {
	return p.Sprintf(key, args...)
}
