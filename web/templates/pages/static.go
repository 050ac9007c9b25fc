package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// About is the public about page.
func About() cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-16"),
		g.Div(
			g.Class("mx-auto max-w-3xl rounded-xl bg-white p-10 shadow"),
			g.H1(g.Class("mb-4 border-b pb-2 text-3xl font-extrabold text-rose-900"), cmp.Text("About SLVNK Matrimony")),
			g.P(
				g.Class("mb-6 leading-relaxed text-gray-700"),
				cmp.Text("SLVNK Matrimony has been bringing families together for over a decade. We combine a carefully verified member base with personal matchmaking assistance, so every introduction starts from trust."),
			),
			g.P(
				g.Class("leading-relaxed text-gray-700"),
				cmp.Text("Our advisors work with both families throughout the journey, from the first expression of interest to the wedding day."),
			),
		),
	)
}

// Pricing lists the membership plans.
func Pricing() cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-16"),
		g.H1(g.Class("text-center text-3xl font-extrabold text-gray-900"), cmp.Text("Membership Plans")),
		g.Div(
			g.Class("mt-10 grid gap-8 md:grid-cols-3"),
			plan("Free", "₹0", []string{"Create your profile", "Browse profiles", "5 interests per month"}, false),
			plan("Gold", "₹2,999 / 3 months", []string{"Unlimited interests", "View contact details", "Priority listing"}, true),
			plan("Platinum", "₹4,999 / 6 months", []string{"Everything in Gold", "Dedicated advisor", "Profile highlighting"}, false),
		),
	)
}

func plan(name, price string, features []string, highlight bool) cmp.Node {
	class := "rounded-xl bg-white p-8 shadow"
	if highlight {
		class += " ring-2 ring-rose-900"
	}
	return g.Div(
		g.Class(class),
		g.H2(g.Class("text-xl font-bold text-rose-900"), cmp.Text(name)),
		g.P(g.Class("mt-2 text-2xl font-extrabold text-gray-900"), cmp.Text(price)),
		g.Ul(
			g.Class("mt-6 space-y-2 text-sm text-gray-600"),
			cmp.Group(cmp.Map(features, func(f string) cmp.Node {
				return g.Li(cmp.Text("✓ " + f))
			})),
		),
		g.A(
			g.Href("/signup"),
			g.Class("mt-8 block rounded-lg bg-rose-900 px-4 py-2 text-center font-semibold text-white hover:bg-rose-800"),
			cmp.Text("Get Started"),
		),
	)
}

// Contact is the contact-us page.
func Contact() cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-16"),
		g.Div(
			g.Class("mx-auto max-w-xl rounded-xl bg-white p-10 shadow"),
			g.H1(g.Class("text-3xl font-extrabold text-rose-900"), cmp.Text("Contact Us")),
			g.P(g.Class("mt-4 text-gray-700"), cmp.Text("We usually respond within one business day.")),
			g.Dl(
				g.Class("mt-8 space-y-4 text-gray-700"),
				contactRow("Email", "support@slvnkmatrimony.example"),
				contactRow("Phone", "+91 98765 43210"),
				contactRow("Office", "2nd Floor, Lakshmi Complex, MG Road, Bengaluru"),
			),
		),
	)
}

func contactRow(label, value string) cmp.Node {
	return g.Div(
		g.Dt(g.Class("text-sm font-semibold text-gray-500"), cmp.Text(label)),
		g.Dd(cmp.Text(value)),
	)
}
