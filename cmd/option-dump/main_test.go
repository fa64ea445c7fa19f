package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDump_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, options{format: "json", locale: "en"}))

	var form struct {
		Fields []struct {
			Type  string `json:"type"`
			Name  string `json:"name"`
			Label string `json:"label"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &form))
	require.Len(t, form.Fields, 4)
	require.Equal(t, "textarea", form.Fields[0].Type)
	require.Equal(t, "Vimeo Options", form.Fields[3].Label)
}

func TestDump_YAMLProvider(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, options{format: "yaml", locale: "en", provider: "vimeo"}))

	var fs struct {
		Type     string `yaml:"type"`
		Label    string `yaml:"label"`
		Children []struct {
			Name string `yaml:"name"`
		} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fs))
	require.Equal(t, "fieldset", fs.Type)
	require.Equal(t, "Vimeo Options", fs.Label)
	require.Len(t, fs.Children, 14)
	require.Equal(t, "vm_autopause", fs.Children[0].Name)
}

func TestDump_ProviderByNamespace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, options{format: "json", provider: "yt"}))
	require.Contains(t, buf.String(), `"yt_noCookie"`)
}

func TestDump_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorContains(t, dump(&buf, options{format: "toml"}), "unknown format")
	require.ErrorContains(t, dump(&buf, options{format: "json", provider: "dailymotion"}), "unknown provider")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "--provider", "youtube"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), `"YouTube Options"`)
}
