package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

// Option lists for the signup selects. These mirror the values the backend
// accepts for each profile field.
var (
	genderOptions       = []string{"Male", "Female"}
	createdByOptions    = []string{"Self", "Parent", "Sibling", "Relative", "Friend"}
	maritalOptions      = []string{"Never Married", "Divorced", "Widowed"}
	physicalOptions     = []string{"Normal", "Physically Challenged"}
	bodyTypeOptions     = []string{"Slim", "Average", "Athletic", "Heavy"}
	complexionOptions   = []string{"Fair", "Wheatish", "Dark"}
	manglikOptions      = []string{"Yes", "No", "Don't Know"}
	educationOptions    = []string{"High School", "Diploma", "Bachelors", "Masters", "Doctorate"}
	parentStatusOptions = []string{"Employed", "Business", "Retired", "Homemaker", "Not Alive"}
	familyTypeOptions   = []string{"Nuclear", "Joint"}
	familyValuesOptions = []string{"Traditional", "Moderate", "Liberal"}
	dietOptions         = []string{"Vegetarian", "Non-Vegetarian", "Eggetarian", "Vegan"}
	habitOptions        = []string{"No", "Occasionally", "Yes"}
	religionOptions     = []string{"Hindu", "Muslim", "Christian", "Sikh", "Jain", "Buddhist", "Other"}
	motherTongueOptions = []string{"Hindi", "Telugu", "Tamil", "Kannada", "Malayalam", "Marathi", "Bengali", "Gujarati", "Punjabi", "Other"}
)

// SignupStep dispatches to the wizard page for step (1-based). values holds
// everything entered so far; errors maps field names to inline messages.
func SignupStep(step int, values, errors map[string]string) cmp.Node {
	var form cmp.Node
	switch step {
	case 2:
		form = accountStep(values, errors)
	case 3:
		form = profileStep(values, errors)
	case 4:
		form = photoStep(values)
	default:
		form = personalStep(values, errors)
	}
	return g.Section(
		g.Class("container mx-auto px-6 py-12"),
		g.Div(
			g.Class("mx-auto max-w-2xl rounded-xl bg-white p-8 shadow"),
			g.H1(g.Class("mb-2 text-center text-2xl font-bold text-gray-900"), cmp.Text("Create Your Profile")),
			partials.Stepper(step),
			form,
		),
	)
}

func personalStep(values, errors map[string]string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action("/signup/1"),
		g.Class("space-y-4"),
		partials.TextField("name", "Full Name", "text", values["name"], errors["name"], true),
		g.Div(
			g.Class("grid gap-4 sm:grid-cols-2"),
			partials.SelectField("gender", "Gender", genderOptions, values["gender"], errors["gender"], true),
			partials.TextField("dateOfBirth", "Date of Birth", "date", values["dateOfBirth"], errors["dateOfBirth"], true),
		),
		partials.TextField("mobileNumber", "Mobile Number", "tel", values["mobileNumber"], errors["mobileNumber"], true),
		g.Div(
			g.Class("grid gap-4 sm:grid-cols-3"),
			partials.TextField("city", "City", "text", values["city"], errors["city"], true),
			partials.TextField("state", "State", "text", values["state"], errors["state"], true),
			partials.TextField("country", "Country", "text", values["country"], errors["country"], true),
		),
		partials.SelectField("profileCreatedBy", "Profile Created By", createdByOptions, values["profileCreatedBy"], errors["profileCreatedBy"], true),
		partials.SubmitButton("Continue"),
	)
}

func accountStep(values, errors map[string]string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action("/signup/2"),
		g.Class("space-y-4"),
		partials.TextField("email", "Email", "email", values["email"], errors["email"], true),
		partials.TextField("password", "Password", "password", "", errors["password"], true),
		partials.TextField("confirmPassword", "Confirm Password", "password", "", errors["confirmPassword"], true),
		wizardNav("/signup/1", "Continue"),
	)
}

func profileStep(values, errors map[string]string) cmp.Node {
	sel := func(name, label string, options []string) cmp.Node {
		return partials.SelectField(name, label, options, values[name], errors[name], false)
	}
	txt := func(name, label string) cmp.Node {
		return partials.TextField(name, label, "text", values[name], errors[name], false)
	}
	num := func(name, label string) cmp.Node {
		return partials.TextField(name, label, "number", values[name], errors[name], false)
	}
	return g.Form(
		g.Method("post"),
		g.Action("/signup/3"),
		g.Class("space-y-6"),
		fieldGroup("Basic Details",
			partials.SelectField("maritalStatus", "Marital Status", maritalOptions, values["maritalStatus"], errors["maritalStatus"], true),
			num("heightCm", "Height (cm)"),
			num("weightKg", "Weight (kg)"),
			sel("physicalStatus", "Physical Status", physicalOptions),
			sel("bodyType", "Body Type", bodyTypeOptions),
			sel("complexion", "Complexion", complexionOptions),
		),
		fieldGroup("Religious Background",
			partials.SelectField("motherTongue", "Mother Tongue", motherTongueOptions, values["motherTongue"], errors["motherTongue"], true),
			partials.SelectField("religion", "Religion", religionOptions, values["religion"], errors["religion"], true),
			partials.TextField("caste", "Caste", "text", values["caste"], errors["caste"], true),
			txt("subCaste", "Sub-caste"),
			txt("gothra", "Gothra"),
			sel("manglik", "Manglik", manglikOptions),
		),
		fieldGroup("Education & Career",
			partials.SelectField("educationLevel", "Education Level", educationOptions, values["educationLevel"], errors["educationLevel"], true),
			txt("educationField", "Field of Study"),
			partials.TextField("occupation", "Occupation", "text", values["occupation"], errors["occupation"], true),
			txt("annualIncome", "Annual Income"),
		),
		fieldGroup("Family",
			sel("fatherStatus", "Father's Status", parentStatusOptions),
			sel("motherStatus", "Mother's Status", parentStatusOptions),
			num("numberOfSiblings", "Number of Siblings"),
			num("siblingsMarried", "Siblings Married"),
			sel("familyType", "Family Type", familyTypeOptions),
			sel("familyValues", "Family Values", familyValuesOptions),
		),
		fieldGroup("Lifestyle",
			sel("diet", "Diet", dietOptions),
			sel("smokingHabits", "Smoking", habitOptions),
			sel("drinkingHabits", "Drinking", habitOptions),
		),
		partials.TextAreaField("bio", "About Yourself", values["bio"], errors["bio"]),
		wizardNav("/signup/2", "Continue"),
	)
}

func fieldGroup(title string, fields ...cmp.Node) cmp.Node {
	return g.FieldSet(
		g.Legend(g.Class("mb-3 text-sm font-semibold uppercase tracking-wide text-gray-500"), cmp.Text(title)),
		g.Div(g.Class("grid gap-4 sm:grid-cols-2"), cmp.Group(fields)),
	)
}

func photoStep(values map[string]string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action("/signup/4"),
		g.EncType("multipart/form-data"),
		g.Class("space-y-6"),
		g.Div(
			g.Label(g.For("profileImage"), g.Class("mb-1 block text-sm font-medium text-gray-700"), cmp.Text("Profile Photo (optional)")),
			g.Input(
				g.ID("profileImage"),
				g.Type("file"),
				g.Name("profileImage"),
				g.Accept("image/*"),
				g.Class("w-full rounded-lg border border-gray-300 px-3 py-2 text-sm"),
			),
			g.P(g.Class("mt-1 text-xs text-gray-500"), cmp.Text("A clear, recent photo gets far more responses.")),
		),
		reviewSummary(values),
		wizardNav("/signup/3", "Create My Profile"),
	)
}

func reviewSummary(values map[string]string) cmp.Node {
	row := func(label, key string) cmp.Node {
		value := values[key]
		if value == "" {
			value = "—"
		}
		return g.Div(
			g.Dt(g.Class("text-xs font-semibold uppercase text-gray-500"), cmp.Text(label)),
			g.Dd(g.Class("text-sm text-gray-800"), cmp.Text(value)),
		)
	}
	return g.Div(
		g.Class("rounded-lg bg-gray-50 p-6"),
		g.H2(g.Class("mb-4 font-semibold text-gray-900"), cmp.Text("Review Your Details")),
		g.Dl(
			g.Class("grid gap-3 sm:grid-cols-2"),
			row("Name", "name"),
			row("Date of Birth", "dateOfBirth"),
			row("Email", "email"),
			row("Mobile", "mobileNumber"),
			row("City", "city"),
			row("Religion", "religion"),
			row("Education", "educationLevel"),
			row("Occupation", "occupation"),
		),
	)
}

func wizardNav(backHref, submitLabel string) cmp.Node {
	return g.Div(
		g.Class("flex items-center gap-4"),
		g.A(
			g.Href(backHref),
			g.Class("rounded-lg border border-gray-300 px-6 py-3 text-sm font-semibold text-gray-700 hover:bg-gray-50"),
			cmp.Text("Back"),
		),
		partials.SubmitButton(submitLabel),
	)
}
