package layouts

import (
	cmp "maragu.dev/gomponents"
	comps "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// HTMXScriptURL is the htmx build loaded by every page.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shell.
func Base(title string, body ...cmp.Node) cmp.Node {
	return comps.HTML5(comps.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			g.Script(g.Src(HTMXScriptURL)),
		},
		Body: body,
	})
}
