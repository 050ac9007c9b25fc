package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

// AdminLogin is the password gate in front of the admin area.
func AdminLogin() cmp.Node {
	return g.Section(
		g.Class("flex min-h-screen items-center justify-center bg-gray-900 px-6"),
		g.Div(
			g.Class("w-full max-w-sm rounded-xl bg-white p-8 shadow-2xl"),
			g.H1(g.Class("text-xl font-bold text-gray-900"), cmp.Text("Admin Access")),
			g.Form(
				g.Method("post"),
				g.Action("/admin/login"),
				g.Class("mt-6 space-y-4"),
				partials.TextField("password", "Admin Password", "password", "", "", true),
				partials.SubmitButton("Enter"),
			),
		),
	)
}

// AdminDashboardData is everything the dashboard page renders.
type AdminDashboardData struct {
	TotalUsers    int
	VerifiedUsers int
	Users         []api.Profile
	Page          int
	TotalPages    int
	Filter        string
}

// AdminDashboard shows the stats cards and the paginated user table.
func AdminDashboard(d AdminDashboardData) cmp.Node {
	return g.Div(
		g.Class("min-h-screen bg-gray-100"),
		adminHeader(),
		g.Div(
			g.Class("container mx-auto px-6 py-8"),
			g.Div(
				g.Class("grid gap-6 sm:grid-cols-3"),
				statCard("Total Users", d.TotalUsers),
				statCard("Verified Users", d.VerifiedUsers),
				statCard("This Page", len(d.Users)),
			),
			g.Div(
				g.Class("mt-8 flex items-center justify-between"),
				g.Div(
					g.Class("flex gap-2"),
					filterTab("Recent", "recent", d.Filter),
					filterTab("This Week", "week", d.Filter),
					filterTab("This Month", "month", d.Filter),
				),
				g.A(
					g.Href("/admin/users/new"),
					g.Class("rounded-lg bg-rose-900 px-4 py-2 text-sm font-semibold text-white hover:bg-rose-800"),
					cmp.Text("+ Add User"),
				),
			),
			userTable(d.Users),
			adminPager(d.Page, d.TotalPages, d.Filter),
		),
	)
}

func adminHeader() cmp.Node {
	return g.Header(
		g.Class("bg-gray-900 text-white"),
		g.Div(
			g.Class("container mx-auto flex items-center justify-between px-6 py-4"),
			g.A(g.Href("/admin"), g.Class("text-lg font-bold"), cmp.Text("SLVNK Admin")),
			g.Form(
				g.Method("post"),
				g.Action("/admin/logout"),
				g.Button(
					g.Type("submit"),
					g.Class("text-sm text-gray-300 hover:text-white"),
					cmp.Text("Sign out"),
				),
			),
		),
	)
}

func statCard(label string, value int) cmp.Node {
	return g.Div(
		g.Class("rounded-xl bg-white p-6 shadow"),
		g.P(g.Class("text-sm text-gray-500"), cmp.Text(label)),
		g.P(g.Class("mt-1 text-3xl font-extrabold text-gray-900"), cmp.Text(fmt.Sprintf("%d", value))),
	)
}

func filterTab(label, value, active string) cmp.Node {
	href := "/admin?filter=" + value
	class := "rounded-lg px-4 py-2 text-sm font-medium"
	if value == active {
		class += " bg-rose-900 text-white"
	} else {
		class += " bg-white text-gray-700 shadow hover:bg-rose-50"
	}
	return g.A(g.Href(href), g.Class(class), cmp.Text(label))
}

func userTable(users []api.Profile) cmp.Node {
	if len(users) == 0 {
		return g.Div(
			g.Class("mt-6 rounded-xl bg-white p-12 text-center text-gray-500 shadow"),
			cmp.Text("No users match this filter."),
		)
	}
	return g.Div(
		g.Class("mt-6 overflow-x-auto rounded-xl bg-white shadow"),
		g.Table(
			g.Class("w-full text-left text-sm"),
			g.THead(
				g.Class("border-b bg-gray-50 text-xs uppercase text-gray-500"),
				g.Tr(
					g.Th(g.Class("px-6 py-3"), cmp.Text("Name")),
					g.Th(g.Class("px-6 py-3"), cmp.Text("Email")),
					g.Th(g.Class("px-6 py-3"), cmp.Text("Gender")),
					g.Th(g.Class("px-6 py-3"), cmp.Text("Location")),
					g.Th(g.Class("px-6 py-3"), cmp.Text("Actions")),
				),
			),
			g.TBody(
				cmp.Group(cmp.Map(users, func(u api.Profile) cmp.Node {
					return g.Tr(
						g.Class("border-b last:border-0 hover:bg-gray-50"),
						g.Td(
							g.Class("px-6 py-3 font-medium text-gray-900"),
							g.A(g.Href("/admin/users/"+u.ID), cmp.Text(u.Name)),
						),
						g.Td(g.Class("px-6 py-3 text-gray-600"), cmp.Text(u.Email)),
						g.Td(g.Class("px-6 py-3 text-gray-600"), cmp.Text(u.Gender)),
						g.Td(g.Class("px-6 py-3 text-gray-600"), cmp.Text(u.Location())),
						g.Td(
							g.Class("px-6 py-3"),
							g.Form(
								g.Method("post"),
								g.Action("/admin/users/"+u.ID+"/delete"),
								g.Button(
									g.Type("submit"),
									g.Class("text-red-600 hover:underline"),
									cmp.Text("Delete"),
								),
							),
						),
					)
				})),
			),
		),
	)
}

func adminPager(page, totalPages int, filter string) cmp.Node {
	if totalPages <= 1 {
		return nil
	}
	link := func(p int, label string, disabled bool) cmp.Node {
		if disabled {
			return g.Span(g.Class("rounded-lg border border-gray-200 px-3 py-2 text-sm text-gray-300"), cmp.Text(label))
		}
		href := fmt.Sprintf("/admin?page=%d", p)
		if filter != "" {
			href += "&filter=" + filter
		}
		return g.A(
			g.Href(href),
			g.Class("rounded-lg border border-gray-300 px-3 py-2 text-sm text-gray-700 hover:bg-rose-50"),
			cmp.Text(label),
		)
	}
	return g.Div(
		g.Class("mt-6 flex items-center justify-center gap-3"),
		link(page-1, "Prev", page <= 1),
		g.Span(g.Class("text-sm text-gray-600"), cmp.Text(fmt.Sprintf("Page %d of %d", page, totalPages))),
		link(page+1, "Next", page >= totalPages),
	)
}

// AdminNewUser is the add-user form. The admin fills the minimum the
// backend requires; everything else can be edited later by the member.
func AdminNewUser(values, errors map[string]string) cmp.Node {
	return g.Div(
		g.Class("min-h-screen bg-gray-100"),
		adminHeader(),
		g.Div(
			g.Class("container mx-auto max-w-xl px-6 py-8"),
			g.Div(
				g.Class("rounded-xl bg-white p-8 shadow"),
				g.H1(g.Class("text-xl font-bold text-gray-900"), cmp.Text("Add User")),
				g.Form(
					g.Method("post"),
					g.Action("/admin/users/new"),
					g.Class("mt-6 space-y-4"),
					partials.TextField("name", "Full Name", "text", values["name"], errors["name"], true),
					partials.TextField("email", "Email", "email", values["email"], errors["email"], true),
					partials.TextField("password", "Password", "password", "", errors["password"], true),
					partials.SelectField("gender", "Gender", genderOptions, values["gender"], errors["gender"], true),
					partials.TextField("dateOfBirth", "Date of Birth", "date", values["dateOfBirth"], errors["dateOfBirth"], true),
					partials.TextField("mobileNumber", "Mobile Number", "tel", values["mobileNumber"], errors["mobileNumber"], true),
					partials.SubmitButton("Create User"),
				),
			),
		),
	)
}

// AdminUserDetail shows one member to the admin, with the photo override
// upload and the delete action.
func AdminUserDetail(p *api.Profile) cmp.Node {
	return g.Div(
		g.Class("min-h-screen bg-gray-100"),
		adminHeader(),
		g.Div(
			g.Class("container mx-auto max-w-2xl px-6 py-8"),
			g.A(g.Href("/admin"), g.Class("text-sm text-rose-900"), cmp.Text("← Back to dashboard")),
			g.Div(
				g.Class("mt-4 rounded-xl bg-white p-8 shadow"),
				g.Div(
					g.Class("flex items-center gap-6"),
					g.Img(
						g.Src(partials.PhotoURL(p)),
						g.Alt(p.Name),
						g.Class("h-24 w-24 rounded-full object-cover"),
					),
					g.Div(
						g.H1(g.Class("text-2xl font-bold text-gray-900"), cmp.Text(p.Name)),
						g.P(g.Class("text-gray-600"), cmp.Text(p.Email)),
						g.P(g.Class("text-sm text-gray-500"), cmp.Text(p.Location())),
					),
				),
				g.Dl(
					g.Class("mt-6 grid gap-3 sm:grid-cols-2"),
					detailRow("Gender", p.Gender),
					detailRow("Age", ageText(p)),
					detailRow("Religion", p.Religion),
					detailRow("Education", p.EducationLevel),
					detailRow("Occupation", p.Occupation),
					detailRow("Marital Status", p.MaritalStatus),
				),
				g.Div(
					g.Class("mt-8 border-t pt-6"),
					g.H2(g.Class("mb-3 font-semibold text-gray-900"), cmp.Text("Replace Photo")),
					g.Form(
						g.Method("post"),
						g.Action("/admin/users/"+p.ID+"/photo"),
						g.EncType("multipart/form-data"),
						g.Class("flex items-center gap-4"),
						g.Input(
							g.Type("file"),
							g.Name("profileImage"),
							g.Accept("image/*"),
							g.Required(),
							g.Class("flex-1 rounded-lg border border-gray-300 px-3 py-2 text-sm"),
						),
						g.Button(
							g.Type("submit"),
							g.Class("rounded-lg bg-rose-900 px-4 py-2 text-sm font-semibold text-white hover:bg-rose-800"),
							cmp.Text("Upload"),
						),
					),
				),
				g.Form(
					g.Method("post"),
					g.Action("/admin/users/"+p.ID+"/delete"),
					g.Class("mt-6"),
					g.Button(
						g.Type("submit"),
						g.Class("rounded-lg border border-red-300 px-4 py-2 text-sm font-semibold text-red-600 hover:bg-red-50"),
						cmp.Text("Delete User"),
					),
				),
			),
		),
	)
}
