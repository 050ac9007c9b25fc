// Package partials holds view fragments shared between pages and rendered
// on their own for htmx swaps.
package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Navbar renders the fixed site header. Member links only appear once the
// visitor has a validated session.
func Navbar(isAuthenticated bool) cmp.Node {
	return g.Header(
		g.Class("fixed top-0 inset-x-0 z-50 bg-white shadow"),
		g.Nav(
			g.Class("container mx-auto flex items-center justify-between px-6 py-4"),
			g.A(
				g.Href("/"),
				g.Class("text-2xl font-extrabold text-rose-900"),
				cmp.Text("SLVNK"),
				g.Span(g.Class("text-amber-500"), cmp.Text(" Matrimony")),
			),
			g.Div(
				g.Class("flex items-center gap-6 text-sm font-medium"),
				navLink("/", "Home"),
				navLink("/about", "About"),
				navLink("/pricing", "Pricing"),
				navLink("/contact-us", "Contact Us"),
				cmp.If(isAuthenticated, cmp.Group([]cmp.Node{
					navLink("/search", "Search"),
					navLink("/profile", "My Profile"),
					g.A(
						g.Href("/logout"),
						g.Class("rounded-lg border border-rose-900 px-4 py-2 text-rose-900 hover:bg-rose-50"),
						cmp.Text("Logout"),
					),
				})),
				cmp.If(!isAuthenticated, cmp.Group([]cmp.Node{
					navLink("/login", "Login"),
					g.A(
						g.Href("/signup"),
						g.Class("rounded-lg bg-rose-900 px-4 py-2 text-white hover:bg-rose-800"),
						cmp.Text("Register Free"),
					),
				})),
			),
		),
	)
}

func navLink(href, label string) cmp.Node {
	return g.A(g.Href(href), g.Class("text-gray-600 hover:text-rose-900"), cmp.Text(label))
}

// Footer renders the site footer shown under every public page.
func Footer() cmp.Node {
	return g.Footer(
		g.Class("bg-rose-950 text-rose-100 mt-12"),
		g.Div(
			g.Class("container mx-auto px-6 py-10 grid gap-8 md:grid-cols-3"),
			g.Div(
				g.Div(g.Class("text-xl font-bold text-white mb-3"), cmp.Text("SLVNK Matrimony")),
				g.P(g.Class("text-sm leading-relaxed"), cmp.Text("Helping families find the right match with verified profiles and a personal touch.")),
			),
			g.Div(
				g.Div(g.Class("font-semibold text-white mb-3"), cmp.Text("Quick Links")),
				g.Ul(
					g.Class("space-y-2 text-sm"),
					g.Li(g.A(g.Href("/about"), cmp.Text("About Us"))),
					g.Li(g.A(g.Href("/pricing"), cmp.Text("Pricing"))),
					g.Li(g.A(g.Href("/contact-us"), cmp.Text("Contact Us"))),
				),
			),
			g.Div(
				g.Div(g.Class("font-semibold text-white mb-3"), cmp.Text("Reach Us")),
				g.P(g.Class("text-sm"), cmp.Text("support@slvnkmatrimony.example")),
			),
		),
		g.Div(
			g.Class("border-t border-rose-900 py-4 text-center text-xs"),
			cmp.Text("© SLVNK Matrimony. All rights reserved."),
		),
	)
}
