package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/internal/search"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

// Search is the member search page. The whole pane lives inside a websocket
// scope: filter edits, page clicks and sort changes are all sent over the
// socket, and the server pushes the results pane back as out-of-band swaps.
func Search(filters search.FilterSet, snap search.Snapshot) cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-10"),
		g.Div(g.ID("scroll-anchor")),
		g.H1(g.Class("mb-6 text-2xl font-bold text-gray-900"), cmp.Text("Find Your Match")),
		g.Div(
			hx.Ext("ws"),
			cmp.Attr("ws-connect", "/search/ws"),
			g.Class("flex flex-col gap-8 lg:flex-row"),
			partials.FilterPanel(filters),
			partials.SearchResults(snap, false),
		),
	)
}
