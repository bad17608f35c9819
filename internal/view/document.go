package view

import (
	"github.com/a-h/templ"
	"github.com/nfrund/homepage/web/src/templates/layouts"
	"github.com/nfrund/homepage/web/src/templates/pages"
)

// HomeDocument is the full HTML document for a home page instance.
func HomeDocument(data pages.HomeData) templ.Component {
	return AdaptGomponentToTempl(layouts.Base("", pages.HomePage(data)))
}
