package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// DefaultTitle is shown by Header when it is given no title.
const DefaultTitle = "Default title"

// Header renders a level-2 heading with the given title, or DefaultTitle
// when the title is empty.
func Header(title string) cmp.Node {
	if title == "" {
		title = DefaultTitle
	}
	return g.H2(cmp.Text(title))
}
