package pages

import (
	"fmt"

	"github.com/nfrund/homepage/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const (
	// LogoText is the decorative heading inside the logo block.
	LogoText = "Next.js 👾"
	// HomeTitle is the title HomePage passes to its Header.
	HomeTitle = "Develop. Preview. Ship. 🚀"
)

// names is fixed for the lifetime of the process and never mutated.
var names = []string{"Ada Lovelace", "Grace Hopper", "Margaret Hamilton"}

// NameList returns a copy of the names shown on the home page, in order.
func NameList() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// HomeData is the view state HomePage draws.
type HomeData struct {
	// InstanceID identifies the mounted page the like button posts to.
	// Empty for static snapshots, which render an inert button.
	InstanceID string
	Likes      int
}

// LikePath is the endpoint that applies a like to the given instance.
func LikePath(instanceID string) string {
	return fmt.Sprintf("/likes/%s", instanceID)
}

// HomePage renders the logo block, the header, the name list and the like
// button, in that order.
func HomePage(data HomeData) cmp.Node {
	return g.Div(
		g.Div(
			g.Class("logo"),
			g.H1(cmp.Text(LogoText)),
		),
		components.Header(HomeTitle),
		NameItems(NameList()),
		LikeButton(data.InstanceID, data.Likes),
	)
}

// NameItems renders an unordered list with one item per name. Each item is
// keyed by the name itself, so duplicate names share a key.
func NameItems(list []string) cmp.Node {
	return g.Ul(
		cmp.Map(list, func(name string) cmp.Node {
			return g.Li(g.Data("key", name), cmp.Text(name))
		}),
	)
}

// LikeButton renders the "Like (n)" button. With an instance id it is wrapped
// in a form that posts to LikePath, and htmx swaps the returned fragment in
// place of the form; without JavaScript the form submits normally.
func LikeButton(instanceID string, likes int) cmp.Node {
	label := cmp.Textf("Like (%d)", likes)
	if instanceID == "" {
		return g.Button(g.Type("button"), label)
	}

	action := LikePath(instanceID)
	return g.Form(
		g.Class("like"),
		g.Method("post"),
		g.Action(action),
		hx.Post(action),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Button(g.Type("submit"), label),
	)
}
