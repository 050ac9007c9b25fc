package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

// MyProfile is the logged-in member's own profile page with the edit form
// and photo upload.
func MyProfile(p *api.Profile, fieldErrs map[string]string) cmp.Node {
	sel := func(name, label string, options []string, value string) cmp.Node {
		return partials.SelectField(name, label, options, value, fieldErrs[name], false)
	}
	txt := func(name, label, value string) cmp.Node {
		return partials.TextField(name, label, "text", value, fieldErrs[name], false)
	}
	return g.Section(
		g.Class("container mx-auto px-6 py-10"),
		g.Div(
			g.Class("mx-auto max-w-3xl space-y-8"),
			g.Div(
				g.Class("flex items-center gap-6 rounded-xl bg-white p-8 shadow"),
				g.Img(
					g.Src(partials.PhotoURL(p)),
					g.Alt(p.Name),
					g.Class("h-28 w-28 rounded-full object-cover"),
				),
				g.Div(
					g.H1(g.Class("text-2xl font-bold text-gray-900"), cmp.Text(p.Name)),
					g.P(g.Class("text-gray-600"), cmp.Text(p.Location())),
					cmp.If(p.IsVerified, g.Span(
						g.Class("mt-1 inline-block rounded-full bg-green-100 px-2 py-0.5 text-xs text-green-700"),
						cmp.Text("Verified"),
					)),
				),
			),
			g.Div(
				g.Class("rounded-xl bg-white p-8 shadow"),
				g.H2(g.Class("mb-4 font-semibold text-gray-900"), cmp.Text("Update Photo")),
				g.Form(
					g.Method("post"),
					g.Action("/profile/photo"),
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
				g.Action("/profile"),
				g.Class("rounded-xl bg-white p-8 shadow space-y-6"),
				g.H2(g.Class("font-semibold text-gray-900"), cmp.Text("Edit Profile")),
				g.Div(
					g.Class("grid gap-4 sm:grid-cols-2"),
					txt("city", "City", p.City),
					txt("state", "State", p.State),
					txt("occupation", "Occupation", p.Occupation),
					txt("annualIncome", "Annual Income", p.AnnualIncome),
					sel("educationLevel", "Education Level", educationOptions, p.EducationLevel),
					txt("educationField", "Field of Study", p.EducationField),
					sel("maritalStatus", "Marital Status", maritalOptions, p.MaritalStatus),
					sel("diet", "Diet", dietOptions, p.Diet),
				),
				partials.TextAreaField("bio", "About Yourself", p.Bio, fieldErrs["bio"]),
				partials.SubmitButton("Save Changes"),
			),
		),
	)
}

// ProfileDetail is another member's full profile, reached from a search
// card.
func ProfileDetail(p *api.Profile) cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-10"),
		g.Div(
			g.Class("mx-auto max-w-4xl"),
			g.A(g.Href("/search"), g.Class("text-sm text-rose-900"), cmp.Text("← Back to search")),
			g.Div(
				g.Class("mt-4 overflow-hidden rounded-xl bg-white shadow md:flex"),
				g.Img(
					g.Src(partials.PhotoURL(p)),
					g.Alt(p.Name),
					g.Class("h-96 w-full object-cover md:w-1/2"),
				),
				g.Div(
					g.Class("p-8"),
					g.Div(
						g.Class("flex items-center gap-3"),
						g.H1(g.Class("text-3xl font-bold text-gray-900"), cmp.Text(p.Name)),
						cmp.If(p.IsVerified, g.Span(
							g.Class("rounded-full bg-green-100 px-2 py-0.5 text-xs text-green-700"),
							cmp.Text("Verified"),
						)),
					),
					g.P(g.Class("mt-1 text-gray-600"), cmp.Text(p.Location())),
					cmp.If(p.Bio != "", g.P(g.Class("mt-4 leading-relaxed text-gray-700"), cmp.Text(p.Bio))),
				),
			),
			g.Div(
				g.Class("mt-8 grid gap-8 md:grid-cols-2"),
				detailCard("Basic Details",
					detailRow("Age", ageText(p)),
					detailRow("Marital Status", p.MaritalStatus),
					detailRow("Height", dimText(p.HeightCm, "cm")),
					detailRow("Weight", dimText(p.WeightKg, "kg")),
					detailRow("Mother Tongue", p.MotherTongue),
				),
				detailCard("Religious Background",
					detailRow("Religion", p.Religion),
					detailRow("Caste", p.Caste),
					detailRow("Sub-caste", p.SubCaste),
					detailRow("Gothra", p.Gothra),
					detailRow("Manglik", p.Manglik),
				),
				detailCard("Education & Career",
					detailRow("Education", p.EducationLevel),
					detailRow("Field", p.EducationField),
					detailRow("Occupation", p.Occupation),
					detailRow("Annual Income", p.AnnualIncome),
				),
				detailCard("Family & Lifestyle",
					detailRow("Family Type", p.FamilyType),
					detailRow("Family Values", p.FamilyValues),
					detailRow("Diet", p.Diet),
					detailRow("Smoking", p.SmokingHabits),
					detailRow("Drinking", p.DrinkingHabits),
				),
			),
		),
	)
}

func detailCard(title string, rows ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("rounded-xl bg-white p-6 shadow"),
		g.H2(g.Class("mb-4 font-semibold text-gray-900"), cmp.Text(title)),
		g.Dl(g.Class("space-y-2"), cmp.Group(rows)),
	)
}

func detailRow(label, value string) cmp.Node {
	if value == "" {
		value = "Not specified"
	}
	return g.Div(
		g.Class("flex justify-between text-sm"),
		g.Dt(g.Class("text-gray-500"), cmp.Text(label)),
		g.Dd(g.Class("font-medium text-gray-800"), cmp.Text(value)),
	)
}

func ageText(p *api.Profile) string {
	if p.Age <= 0 {
		return ""
	}
	return fmt.Sprintf("%d years", p.Age)
}

func dimText(n int, unit string) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d %s", n, unit)
}
