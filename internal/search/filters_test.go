package search_test

import (
	"net/url"
	"testing"

	"github.com/Amityadav08/SLVNK-Frontend/internal/search"
	"github.com/stretchr/testify/assert"
)

func TestFilterSetFromForm_DropsEmptyAndUnknownKeys(t *testing.T) {
	form := url.Values{}
	form.Set("gender", "Female")
	form.Set("location", "")
	form.Set("religion", "Hindu")
	form.Set("favoriteColor", "blue") // not a filter key

	fs := search.FilterSetFromForm(form)

	assert.Equal(t, search.FilterSet{
		"gender":   "Female",
		"religion": "Hindu",
	}, fs)
}

func TestFilterSetFromForm_RejectsUnparseableAgesSilently(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string // empty means key absent
	}{
		{"valid age", "25", "25"},
		{"non-numeric", "abc", ""},
		{"negative", "-3", ""},
		{"zero", "0", ""},
		{"decimal", "25.5", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("minAge", tc.raw)
			fs := search.FilterSetFromForm(form)
			got, ok := fs["minAge"]
			if tc.want == "" {
				assert.False(t, ok, "expected minAge to be absent")
			} else {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParams_StripsEmptyValuesAndAddsPaging(t *testing.T) {
	fs := search.FilterSet{
		"gender":   "Female",
		"minAge":   "25",
		"maxAge":   "35",
		"location": "",
	}

	params := fs.Params(1, 12)

	assert.Equal(t, "Female", params.Get("gender"))
	assert.Equal(t, "25", params.Get("minAge"))
	assert.Equal(t, "35", params.Get("maxAge"))
	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "12", params.Get("limit"))
	// Empty constraints never reach the wire.
	_, hasLocation := params["location"]
	assert.False(t, hasLocation)
}

func TestActiveCountAndClone(t *testing.T) {
	fs := search.FilterSet{"gender": "Male", "religion": "Jain"}
	assert.Equal(t, 2, fs.ActiveCount())

	clone := fs.Clone()
	clone["gender"] = "Female"
	assert.Equal(t, "Male", fs["gender"], "clone must not alias the original")
}
