package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	require.Equal(t, "", string(New("").Render()))
	require.Equal(t, "", string(New("  \n").Render()))
	require.True(t, New(" ").IsEmpty())
}

func TestRender_Sanitizes(t *testing.T) {
	html := string(New("hello <script>alert(1)</script> **world**").Render())
	require.NotContains(t, strings.ToLower(html), "<script")
	require.Contains(t, html, "<strong>world</strong>")
}

func TestRender_Links(t *testing.T) {
	html := string(New("Set an [ISO 639-1](http://www.loc.gov/standards/iso639-2/php/code_list.php) code.").Render())
	require.Contains(t, html, `href="http://www.loc.gov/standards/iso639-2/php/code_list.php"`)
	require.Contains(t, html, `rel="nofollow`)
	require.Contains(t, html, `target="_blank"`)
}

func TestRender_KeepsLineBreaks(t *testing.T) {
	html := string(New("Off - controls hidden.\nOn - controls shown.").Render())
	require.Contains(t, html, "<br")
}

func TestInline_StripsParagraph(t *testing.T) {
	require.Equal(t, "Whether to show <em>Oops</em>.", string(New("Whether to show *Oops*.").Inline()))
}
