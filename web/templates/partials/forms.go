package partials

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// StepNames are the four stages of the signup wizard, in order.
var StepNames = []string{"Personal", "Account", "Profile", "Photo"}

// Stepper renders the wizard progress strip. current is 1-based.
func Stepper(current int) cmp.Node {
	nodes := make([]cmp.Node, 0, len(StepNames))
	for i, name := range StepNames {
		step := i + 1
		circle := "flex h-8 w-8 items-center justify-center rounded-full text-sm font-semibold "
		label := "ml-2 text-sm "
		switch {
		case step < current:
			circle += "bg-green-500 text-white"
			label += "text-green-600"
		case step == current:
			circle += "bg-rose-900 text-white"
			label += "font-semibold text-rose-900"
		default:
			circle += "bg-gray-200 text-gray-500"
			label += "text-gray-400"
		}
		nodes = append(nodes, g.Div(
			g.Class("flex items-center"),
			g.Span(g.Class(circle), cmp.Text(fmt.Sprintf("%d", step))),
			g.Span(g.Class(label), cmp.Text(name)),
		))
		if step < len(StepNames) {
			nodes = append(nodes, g.Div(g.Class("mx-3 h-px w-8 bg-gray-300 sm:w-16")))
		}
	}
	return g.Div(g.Class("mb-8 flex items-center justify-center"), cmp.Group(nodes))
}

// TextField renders a labelled input with an optional inline field error.
func TextField(name, label, inputType, value, fieldErr string, required bool) cmp.Node {
	return g.Div(
		g.Label(
			g.For(name),
			g.Class("mb-1 block text-sm font-medium text-gray-700"),
			cmp.Text(label),
			cmp.If(required, g.Span(g.Class("text-red-500"), cmp.Text(" *"))),
		),
		g.Input(
			g.ID(name),
			g.Type(inputType),
			g.Name(name),
			g.Value(value),
			cmp.If(required, g.Required()),
			g.Class(fieldClass(fieldErr)),
		),
		FieldError(fieldErr),
	)
}

// SelectField renders a labelled select with a leading blank option.
func SelectField(name, label string, options []string, value, fieldErr string, required bool) cmp.Node {
	return g.Div(
		g.Label(
			g.For(name),
			g.Class("mb-1 block text-sm font-medium text-gray-700"),
			cmp.Text(label),
			cmp.If(required, g.Span(g.Class("text-red-500"), cmp.Text(" *"))),
		),
		g.Select(
			g.ID(name),
			g.Name(name),
			cmp.If(required, g.Required()),
			g.Class(fieldClass(fieldErr)),
			g.Option(g.Value(""), cmp.If(value == "", g.Selected()), cmp.Text("Select...")),
			cmp.Group(cmp.Map(options, func(opt string) cmp.Node {
				return g.Option(g.Value(opt), cmp.If(opt == value, g.Selected()), cmp.Text(opt))
			})),
		),
		FieldError(fieldErr),
	)
}

// TextAreaField renders a labelled textarea.
func TextAreaField(name, label, value, fieldErr string) cmp.Node {
	return g.Div(
		g.Label(g.For(name), g.Class("mb-1 block text-sm font-medium text-gray-700"), cmp.Text(label)),
		g.Textarea(
			g.ID(name),
			g.Name(name),
			g.Rows("4"),
			g.Class(fieldClass(fieldErr)),
			cmp.Text(value),
		),
		FieldError(fieldErr),
	)
}

// FieldError renders the inline validation message under a control.
func FieldError(msg string) cmp.Node {
	if msg == "" {
		return nil
	}
	return g.P(g.Class("mt-1 text-xs text-red-600"), cmp.Text(msg))
}

func fieldClass(fieldErr string) string {
	base := "w-full rounded-lg border px-3 py-2 text-sm focus:outline-none focus:ring-2 focus:ring-rose-300"
	if fieldErr != "" {
		return base + " border-red-400"
	}
	return base + " border-gray-300"
}

// SubmitButton is the primary action button on forms.
func SubmitButton(label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("w-full rounded-lg bg-rose-900 px-4 py-3 font-semibold text-white hover:bg-rose-800"),
		cmp.Text(label),
	)
}
