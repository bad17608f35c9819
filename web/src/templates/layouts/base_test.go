package layouts_test

import (
	"strings"
	"testing"

	"github.com/nfrund/homepage/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Likes - Home", layouts.CalculateTitle("Likes"))
	assert.Equal(t, "Home", layouts.CalculateTitle(""))
}

func TestBase_WrapsContent(t *testing.T) {
	content := g.Main(g.ID("content"), cmp.Text("hi"))

	var buf strings.Builder
	require.NoError(t, layouts.Base("<Home>", content).Render(&buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "<title>&lt;Home&gt; - Home</title>")
	assert.Contains(t, html, `<script src="`+layouts.HTMXScriptURL+`"></script>`)
	assert.Contains(t, html, `<link rel="stylesheet" href="/static/app.css">`)
	assert.Contains(t, html, `<body><main id="content">hi</main></body>`)
	assert.True(t, strings.HasSuffix(html, "</html>"))
}

func TestBase_EscapesTitleMarkup(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, layouts.Base(`</title><script>alert(1)</script>`).Render(&buf))

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;/title&gt;&lt;script&gt;")
}
