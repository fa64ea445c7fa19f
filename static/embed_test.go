package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssets(t *testing.T) {
	var got []string
	err := fs.WalkDir(FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		got = append(got, path)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"dist/admin.css", "dist/admin.js"}, got)
}

func TestAdminScriptReadsEditorAttributes(t *testing.T) {
	raw, err := fs.ReadFile(FS, "dist/admin.js")
	require.NoError(t, err)

	// The form builder emits these data attributes on the markup textarea.
	for _, attr := range []string{"data-theme", "dataset.height", "dataset.keybinding", "dataset.behaviors"} {
		require.Contains(t, string(raw), attr)
	}
}
