package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

// Login is the member login page. email pre-fills the form after a failed
// attempt so the visitor only retypes the password.
func Login(email string) cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-16"),
		g.Div(
			g.Class("mx-auto max-w-md rounded-xl bg-white p-8 shadow"),
			g.H1(g.Class("text-2xl font-bold text-gray-900"), cmp.Text("Welcome Back")),
			g.P(g.Class("mt-1 text-sm text-gray-500"), cmp.Text("Log in to continue your search.")),
			g.Form(
				g.Method("post"),
				g.Action("/login"),
				g.Class("mt-6 space-y-4"),
				partials.TextField("email", "Email", "email", email, "", true),
				partials.TextField("password", "Password", "password", "", "", true),
				partials.SubmitButton("Login"),
			),
			g.P(
				g.Class("mt-6 text-center text-sm text-gray-600"),
				cmp.Text("New to SLVNK? "),
				g.A(g.Href("/signup"), g.Class("font-semibold text-rose-900"), cmp.Text("Register free")),
			),
		),
	)
}
