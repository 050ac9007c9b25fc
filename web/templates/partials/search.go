package partials

import (
	"fmt"
	"strings"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/search"
)

// sortOptions in display order. Sorting only reorders the loaded page.
var sortOptions = []struct{ Key, Label string }{
	{search.SortNewest, "Newest First"},
	{search.SortOldest, "Oldest First"},
	{search.SortName, "Name (A-Z)"},
	{search.SortAge, "Age (Low to High)"},
}

// SearchResults renders the results pane: sort bar, card grid and
// pagination. With oob set the pane carries an out-of-band swap marker so
// the socket can replace it in place.
func SearchResults(snap search.Snapshot, oob bool) cmp.Node {
	return g.Div(
		g.ID("search-results"),
		cmp.If(oob, hx.SwapOOB("true")),
		g.Class("flex-1"),
		sortBar(snap),
		resultsBody(snap),
		cmp.If(snap.Err == "" && len(snap.Results) > 0, Paginator(snap.Pagination)),
	)
}

func sortBar(snap search.Snapshot) cmp.Node {
	return g.Div(
		g.Class("mb-4 flex items-center justify-between"),
		g.P(
			g.Class("text-sm text-gray-600"),
			cmp.Text(fmt.Sprintf("%d profiles found", snap.Pagination.Total)),
		),
		g.Select(
			g.Name("sort"),
			cmp.Attr("ws-send"),
			hx.Trigger("change"),
			hx.Vals(`{"type":"sort"}`),
			g.Class("rounded-lg border border-gray-300 px-3 py-2 text-sm"),
			cmp.Group(cmp.Map(sortOptions, func(opt struct{ Key, Label string }) cmp.Node {
				return g.Option(
					g.Value(opt.Key),
					cmp.If(opt.Key == snap.Sort, g.Selected()),
					cmp.Text(opt.Label),
				)
			})),
		),
	)
}

func resultsBody(snap search.Snapshot) cmp.Node {
	switch {
	case snap.Err != "":
		return g.Div(
			g.Class("rounded-lg border border-red-300 bg-red-50 px-6 py-8 text-center text-red-700"),
			cmp.Text(snap.Err),
		)
	case snap.Loading:
		return g.Div(
			g.Class("py-16 text-center text-gray-500"),
			g.Div(g.Class("spinner mx-auto mb-4")),
			cmp.Text("Searching profiles..."),
		)
	case len(snap.Results) == 0:
		return g.Div(
			g.Class("rounded-lg bg-white px-6 py-16 text-center shadow"),
			g.P(g.Class("text-lg font-semibold text-gray-700"), cmp.Text("No profiles found")),
			g.P(g.Class("mt-2 text-sm text-gray-500"), cmp.Text("Try loosening some filters to see more matches.")),
		)
	default:
		return g.Div(
			g.Class("grid gap-6 sm:grid-cols-2 xl:grid-cols-3"),
			cmp.Group(cmp.Map(snap.Results, func(p api.Profile) cmp.Node {
				return ProfileCard(p)
			})),
		)
	}
}

// ProfileCard is one result tile in the search grid.
func ProfileCard(p api.Profile) cmp.Node {
	return g.A(
		g.Href("/profiles/"+p.ID),
		g.Class("block overflow-hidden rounded-xl bg-white shadow transition hover:shadow-lg"),
		g.Img(
			g.Src(PhotoURL(&p)),
			g.Alt(p.Name),
			g.Class("h-56 w-full object-cover"),
		),
		g.Div(
			g.Class("p-4"),
			g.Div(
				g.Class("flex items-center justify-between"),
				g.H3(g.Class("font-semibold text-gray-900"), cmp.Text(p.Name)),
				cmp.If(p.IsVerified, g.Span(
					g.Class("rounded-full bg-green-100 px-2 py-0.5 text-xs text-green-700"),
					cmp.Text("Verified"),
				)),
			),
			g.P(g.Class("mt-1 text-sm text-gray-600"), cmp.Text(cardSubtitle(&p))),
			g.P(g.Class("text-sm text-gray-500"), cmp.Text(p.Location())),
		),
	)
}

func cardSubtitle(p *api.Profile) string {
	parts := []string{}
	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("%d yrs", p.Age))
	}
	if p.Religion != "" {
		parts = append(parts, p.Religion)
	}
	if p.Occupation != "" {
		parts = append(parts, p.Occupation)
	}
	return strings.Join(parts, " · ")
}

// PhotoURL maps a backend image path onto the local media route, falling
// back to the bundled placeholder for profiles without a photo.
func PhotoURL(p *api.Profile) string {
	if p.ProfileImage == "" {
		return "/static/placeholder.svg"
	}
	return "/media/" + strings.TrimPrefix(p.ProfileImage, "/")
}

// Paginator renders the page buttons. At most five numbered buttons are
// shown; the window slides with the current page and gaps collapse into an
// ellipsis.
func Paginator(p search.Pagination) cmp.Node {
	if p.TotalPages <= 1 {
		return nil
	}
	return g.Div(
		g.Class("mt-8 flex items-center justify-center gap-2"),
		pageButton(p.Page-1, "Prev", p.Page <= 1, false),
		cmp.Group(cmp.Map(pageWindow(p.Page, p.TotalPages), func(n int) cmp.Node {
			if n == ellipsis {
				return g.Span(g.Class("px-2 text-gray-400"), cmp.Text("..."))
			}
			return pageButton(n, fmt.Sprintf("%d", n), false, n == p.Page)
		})),
		pageButton(p.Page+1, "Next", p.Page >= p.TotalPages, false),
	)
}

func pageButton(page int, label string, disabled, current bool) cmp.Node {
	class := "rounded-lg border px-3 py-2 text-sm"
	switch {
	case current:
		class += " border-rose-900 bg-rose-900 text-white"
	case disabled:
		class += " cursor-not-allowed border-gray-200 text-gray-300"
	default:
		class += " border-gray-300 text-gray-700 hover:bg-rose-50"
	}
	return g.Button(
		g.Type("button"),
		g.Class(class),
		cmp.If(disabled, g.Disabled()),
		cmp.If(!disabled && !current, cmp.Group([]cmp.Node{
			cmp.Attr("ws-send"),
			hx.Trigger("click"),
			hx.Vals(fmt.Sprintf(`{"type":"page","page":"%d"}`, page)),
		})),
		cmp.Text(label),
	)
}

const ellipsis = -1

// pageWindow computes the numbered buttons for current out of total pages:
// up to five numbers with ellipsis markers where pages were skipped.
func pageWindow(current, total int) []int {
	if total <= 5 {
		pages := make([]int, 0, total)
		for n := 1; n <= total; n++ {
			pages = append(pages, n)
		}
		return pages
	}

	start := current - 2
	end := current + 2
	switch {
	case start < 1:
		start, end = 1, 5
	case end > total:
		start, end = total-4, total
	}

	pages := []int{}
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, ellipsis)
		}
	}
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	if end < total {
		if end < total-1 {
			pages = append(pages, ellipsis)
		}
		pages = append(pages, total)
	}
	return pages
}

// filterField describes one control on the filter panel.
type filterField struct {
	Key     string
	Label   string
	Options []string
}

var filterSelects = []filterField{
	{search.FieldGender, "Looking for", []string{"Female", "Male"}},
	{search.FieldReligion, "Religion", []string{"Hindu", "Muslim", "Christian", "Sikh", "Jain", "Buddhist", "Other"}},
	{search.FieldEducationLevel, "Education", []string{"High School", "Diploma", "Bachelors", "Masters", "Doctorate"}},
	{search.FieldMaritalStatus, "Marital Status", []string{"Never Married", "Divorced", "Widowed"}},
	{search.FieldLifestyle, "Lifestyle", []string{"Vegetarian", "Non-Vegetarian", "Eggetarian", "Vegan"}},
}

// FilterPanel renders the sidebar of search filters. Every edit is sent
// over the socket; the debounce lives server-side, so the controls fire on
// plain change and input events.
func FilterPanel(filters search.FilterSet) cmp.Node {
	return g.Form(
		g.ID("filter-panel"),
		cmp.Attr("ws-send"),
		hx.Trigger("change, input delay:100ms"),
		g.Class("w-full rounded-xl bg-white p-6 shadow lg:w-72 lg:shrink-0"),
		g.Input(g.Type("hidden"), g.Name("type"), g.Value("filters")),
		g.Div(
			g.Class("mb-4 flex items-center justify-between"),
			g.H2(g.Class("font-semibold text-gray-900"), cmp.Text("Filters")),
			cmp.If(filters.ActiveCount() > 0, g.Span(
				g.Class("rounded-full bg-rose-100 px-2 py-0.5 text-xs text-rose-800"),
				cmp.Text(fmt.Sprintf("%d active", filters.ActiveCount())),
			)),
		),
		g.Div(
			g.Class("space-y-4"),
			cmp.Group(cmp.Map(filterSelects[:1], func(f filterField) cmp.Node {
				return filterSelect(f, filters[f.Key])
			})),
			g.Div(
				g.Class("grid grid-cols-2 gap-3"),
				filterNumber(search.FieldMinAge, "Min Age", filters[search.FieldMinAge]),
				filterNumber(search.FieldMaxAge, "Max Age", filters[search.FieldMaxAge]),
			),
			filterText(search.FieldLocation, "Location", "City or state", filters[search.FieldLocation]),
			cmp.Group(cmp.Map(filterSelects[1:4], func(f filterField) cmp.Node {
				return filterSelect(f, filters[f.Key])
			})),
			filterText(search.FieldOccupation, "Occupation", "e.g. Engineer", filters[search.FieldOccupation]),
			filterSelect(filterSelects[4], filters[search.FieldLifestyle]),
		),
	)
}

func filterSelect(f filterField, value string) cmp.Node {
	return g.Div(
		g.Label(g.For("filter-"+f.Key), g.Class("mb-1 block text-sm text-gray-600"), cmp.Text(f.Label)),
		g.Select(
			g.ID("filter-"+f.Key),
			g.Name(f.Key),
			g.Class("w-full rounded-lg border border-gray-300 px-3 py-2 text-sm"),
			g.Option(g.Value(""), cmp.If(value == "", g.Selected()), cmp.Text("Any")),
			cmp.Group(cmp.Map(f.Options, func(opt string) cmp.Node {
				return g.Option(g.Value(opt), cmp.If(opt == value, g.Selected()), cmp.Text(opt))
			})),
		),
	)
}

func filterNumber(key, label, value string) cmp.Node {
	return g.Div(
		g.Label(g.For("filter-"+key), g.Class("mb-1 block text-sm text-gray-600"), cmp.Text(label)),
		g.Input(
			g.ID("filter-"+key),
			g.Type("number"),
			g.Name(key),
			g.Value(value),
			g.Min("18"),
			g.Class("w-full rounded-lg border border-gray-300 px-3 py-2 text-sm"),
		),
	)
}

func filterText(key, label, placeholder, value string) cmp.Node {
	return g.Div(
		g.Label(g.For("filter-"+key), g.Class("mb-1 block text-sm text-gray-600"), cmp.Text(label)),
		g.Input(
			g.ID("filter-"+key),
			g.Type("text"),
			g.Name(key),
			g.Value(value),
			g.Placeholder(placeholder),
			g.Class("w-full rounded-lg border border-gray-300 px-3 py-2 text-sm"),
		),
	)
}

// ScrollAnchor is swapped in after a page change so the viewport jumps back
// to the top of the results.
func ScrollAnchor() cmp.Node {
	return g.Div(
		g.ID("scroll-anchor"),
		hx.SwapOOB("true"),
		g.Script(cmp.Raw(`window.scrollTo({top: 0, behavior: "smooth"});`)),
	)
}
