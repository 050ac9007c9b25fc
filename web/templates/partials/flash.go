package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
)

// Flash renders the one-shot success and error banners pulled out of the
// flash session. Nothing is rendered when both lists are empty.
func Flash(flashes view.FlashData) cmp.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}
	return g.Div(
		g.Class("container mx-auto px-6 pt-4 space-y-2"),
		cmp.Group(cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return g.Div(
				g.Class("rounded-lg border border-green-300 bg-green-50 px-4 py-3 text-sm text-green-800"),
				cmp.Text(msg),
			)
		})),
		cmp.Group(cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return g.Div(
				g.Class("rounded-lg border border-red-300 bg-red-50 px-4 py-3 text-sm text-red-800"),
				cmp.Text(msg),
			)
		})),
	)
}
