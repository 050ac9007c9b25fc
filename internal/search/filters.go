// Package search implements the client-side search engine behind the
// member search page: the filter model, the results controller with its
// fetch lifecycle, and the debounced scheduler that decides when the
// backend is actually asked.
package search

import (
	"net/url"
	"strconv"
)

// Filter keys accepted by the backend search endpoint.
const (
	FieldGender         = "gender"
	FieldMinAge         = "minAge"
	FieldMaxAge         = "maxAge"
	FieldLocation       = "location"
	FieldReligion       = "religion"
	FieldEducationLevel = "educationLevel"
	FieldOccupation     = "occupation"
	FieldMaritalStatus  = "maritalStatus"
	FieldLifestyle      = "lifestyle"
)

// FilterFields lists every known filter key, in the order the filter panel
// renders them.
var FilterFields = []string{
	FieldGender,
	FieldMinAge,
	FieldMaxAge,
	FieldLocation,
	FieldReligion,
	FieldEducationLevel,
	FieldOccupation,
	FieldMaritalStatus,
	FieldLifestyle,
}

// FilterSet maps filter keys to their current values. A missing or empty
// key means "no constraint". Consumers replace the whole set on every edit;
// merging is the caller's business.
type FilterSet map[string]string

// ageFields get numeric validation; everything else passes through as-is.
var ageFields = map[string]bool{FieldMinAge: true, FieldMaxAge: true}

// FilterSetFromForm builds a FilterSet from submitted form or query values.
// Unknown keys are ignored. Age bounds must parse as positive integers;
// unparseable input is dropped silently, leaving the field unconstrained.
func FilterSetFromForm(values url.Values) FilterSet {
	fs := FilterSet{}
	for _, key := range FilterFields {
		raw := values.Get(key)
		if raw == "" {
			continue
		}
		if ageFields[key] {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				continue
			}
			fs[key] = strconv.Itoa(n)
			continue
		}
		fs[key] = raw
	}
	return fs
}

// Clone returns an independent copy so a set handed to the scheduler can't
// be mutated behind its back.
func (f FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// ActiveCount reports how many constraints are set, for the "N filters
// active" badge on the panel.
func (f FilterSet) ActiveCount() int {
	n := 0
	for _, v := range f {
		if v != "" {
			n++
		}
	}
	return n
}

// Params converts the set into request query parameters, stripping empty
// values so the backend never sees a key without a constraint.
func (f FilterSet) Params(page, limit int) url.Values {
	params := url.Values{}
	for key, value := range f {
		if value == "" {
			continue
		}
		params.Set(key, value)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	return params
}
