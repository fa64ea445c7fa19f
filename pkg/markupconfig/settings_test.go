package markupconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	require.Equal(t, "", s.EmptyValue)
	require.Equal(t, 1280, s.MaxWidth)
	require.Equal(t, 720, s.MaxHeight)
	require.Empty(t, s.Options)
}

func TestSettings_DataRoundTrip(t *testing.T) {
	s := Defaults()
	s.EmptyValue = "n/a"
	s.MarkupTpl = "<div>{{html}}</div>"
	s.Set("yt_autoplay", "0")
	s.Set("vm_color", "ff0000")

	data := s.Data()
	require.Equal(t, "0", data["yt_autoplay"])
	require.Equal(t, "1280", data[KeyMaxWidth])

	require.Equal(t, s, SettingsFromData(data))
}

func TestSettings_UnsetOptionsAreOmitted(t *testing.T) {
	s := Defaults()
	s.Set("yt_autoplay", "1")
	s.Set("yt_autoplay", "")
	s.Options["vm_loop"] = ""

	data := s.Data()
	_, ok := data["yt_autoplay"]
	require.False(t, ok)
	_, ok = data["vm_loop"]
	require.False(t, ok)
}

func TestSettingsFromData_IgnoresUnknownAndMalformed(t *testing.T) {
	s := SettingsFromData(map[string]string{
		KeyMaxWidth:  "wide",
		KeyMaxHeight: "-5",
		"foo":        "bar",
		"yt_rel":     "1",
	})
	require.Equal(t, DefaultMaxWidth, s.MaxWidth)
	require.Equal(t, DefaultMaxHeight, s.MaxHeight)
	require.Equal(t, map[string]string{"yt_rel": "1"}, s.Options)
}

func TestToggle(t *testing.T) {
	s := Defaults()
	require.Equal(t, ToggleUnset, s.Toggle("yt_fs"))
	require.False(t, s.Toggle("yt_fs").IsSet())

	s.Set("yt_fs", "0")
	require.Equal(t, ToggleDisabled, s.Toggle("yt_fs"))
	require.True(t, s.Toggle("yt_fs").IsSet())

	s.Set("yt_fs", "1")
	require.Equal(t, ToggleEnabled, s.Toggle("yt_fs"))

	for _, v := range []string{"", "0", "1"} {
		require.Equal(t, v, ParseToggle(v).String())
	}
	require.Equal(t, ToggleUnset, ParseToggle("yes"))
}
