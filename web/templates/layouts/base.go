// Package layouts holds the page chrome every view is wrapped in.
package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - SLVNK Matrimony"
	}
	return "SLVNK Matrimony"
}

// Base wraps page content in the site chrome: navbar, flash banners and
// footer. isAuthenticated switches the navbar between visitor and member
// links.
func Base(title string, flashes view.FlashData, isAuthenticated bool, content cmp.Node) cmp.Node {
	return shell(title, cmp.Group([]cmp.Node{
		partials.Navbar(isAuthenticated),
		g.Main(
			g.Class("flex-grow pt-20"),
			partials.Flash(flashes),
			content,
		),
		partials.Footer(),
	}))
}

// AdminBase is the chrome for the admin area: no public navbar or footer,
// just flash banners above the content.
func AdminBase(title string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return shell(title, g.Main(
		g.Class("flex-grow"),
		partials.Flash(flashes),
		content,
	))
}

func shell(title string, body cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js")),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/site.css")),
			),
			g.Body(
				g.Class("min-h-screen flex flex-col bg-gray-50 text-gray-800"),
				body,
			),
		),
	)
}
