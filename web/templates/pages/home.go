// Package pages holds the full-page views, one function per route.
package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the public landing page.
func Home() cmp.Node {
	return cmp.Group([]cmp.Node{
		g.Section(
			g.Class("bg-gradient-to-br from-rose-900 to-rose-700 text-white"),
			g.Div(
				g.Class("container mx-auto px-6 py-24 text-center"),
				g.H1(
					g.Class("text-4xl font-extrabold sm:text-5xl"),
					cmp.Text("Find Your Perfect Life Partner"),
				),
				g.P(
					g.Class("mx-auto mt-4 max-w-2xl text-lg text-rose-100"),
					cmp.Text("Trusted by families across the country. Verified profiles, personal assistance and complete privacy."),
				),
				g.Div(
					g.Class("mt-8 flex justify-center gap-4"),
					g.A(
						g.Href("/signup"),
						g.Class("rounded-lg bg-amber-400 px-6 py-3 font-semibold text-rose-950 hover:bg-amber-300"),
						cmp.Text("Register Free"),
					),
					g.A(
						g.Href("/search"),
						g.Class("rounded-lg border border-white px-6 py-3 font-semibold hover:bg-rose-800"),
						cmp.Text("Browse Profiles"),
					),
				),
			),
		),
		g.Section(
			g.Class("container mx-auto px-6 py-16"),
			g.H2(g.Class("text-center text-3xl font-bold text-gray-900"), cmp.Text("Why SLVNK Matrimony?")),
			g.Div(
				g.Class("mt-10 grid gap-8 md:grid-cols-3"),
				featureCard("Verified Profiles", "Every profile is screened before it appears in search results."),
				featureCard("Privacy First", "Your contact details stay hidden until you choose to share them."),
				featureCard("Personal Assistance", "Our relationship advisors help shortlist matches for your family."),
			),
		),
	})
}

func featureCard(title, body string) cmp.Node {
	return g.Div(
		g.Class("rounded-xl bg-white p-8 text-center shadow"),
		g.H3(g.Class("text-xl font-semibold text-rose-900"), cmp.Text(title)),
		g.P(g.Class("mt-3 text-gray-600"), cmp.Text(body)),
	)
}
