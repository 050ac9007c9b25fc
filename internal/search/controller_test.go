package search_test

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearcher scripts backend responses and records the params of every
// call it receives.
type fakeSearcher struct {
	mu      sync.Mutex
	calls   []url.Values
	respond func(params url.Values) (*api.SearchPage, error)
}

func (f *fakeSearcher) Search(ctx context.Context, token string, params url.Values) (*api.SearchPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	respond := f.respond
	f.mu.Unlock()
	if respond != nil {
		return respond(params)
	}
	return &api.SearchPage{Page: 1, Limit: 12, TotalPages: 1}, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSearcher) lastCall() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

func profiles(ids ...string) []api.Profile {
	out := make([]api.Profile, len(ids))
	for i, id := range ids {
		out[i] = api.Profile{ID: id}
	}
	return out
}

func TestFetch_SuccessReplacesResultsAndPagination(t *testing.T) {
	backend := &fakeSearcher{respond: func(url.Values) (*api.SearchPage, error) {
		return &api.SearchPage{
			Results:    profiles("a", "b", "c"),
			Page:       2,
			Limit:      12,
			Total:      30,
			TotalPages: 3,
		}, nil
	}}
	ctrl := search.NewController(backend, "tok")

	snap, latest := ctrl.Fetch(context.Background(), search.FilterSet{}, 2)

	assert.True(t, latest)
	assert.Len(t, snap.Results, 3)
	assert.Equal(t, search.Pagination{Page: 2, Limit: 12, Total: 30, TotalPages: 3}, snap.Pagination)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
}

func TestFetch_AbsentPaginationFieldsGetDefaults(t *testing.T) {
	backend := &fakeSearcher{respond: func(url.Values) (*api.SearchPage, error) {
		// Backend omitted every pagination field.
		return &api.SearchPage{Results: profiles("a")}, nil
	}}
	ctrl := search.NewController(backend, "tok")

	snap, _ := ctrl.Fetch(context.Background(), search.FilterSet{}, 1)

	assert.Equal(t, search.Pagination{Page: 1, Limit: 12, Total: 0, TotalPages: 1}, snap.Pagination)
}

func TestFetch_FailureClearsResultsAndSetsMessage(t *testing.T) {
	calls := 0
	backend := &fakeSearcher{respond: func(url.Values) (*api.SearchPage, error) {
		calls++
		if calls == 1 {
			return &api.SearchPage{Results: profiles("a", "b"), Page: 1, Limit: 12, Total: 2, TotalPages: 1}, nil
		}
		return nil, &api.Error{Status: 403, Message: "No access"}
	}}
	ctrl := search.NewController(backend, "tok")

	first, _ := ctrl.Fetch(context.Background(), search.FilterSet{}, 1)
	require.Len(t, first.Results, 2)

	snap, latest := ctrl.Fetch(context.Background(), search.FilterSet{}, 1)
	assert.True(t, latest)
	assert.Empty(t, snap.Results, "no stale results behind an error banner")
	assert.Equal(t, "No access", snap.Err)
	assert.False(t, snap.Loading, "loading must clear on every outcome")
}

func TestFetch_StaleResponseDoesNotOverwriteNewerState(t *testing.T) {
	release := make(chan struct{})
	backend := &fakeSearcher{}
	backend.respond = func(params url.Values) (*api.SearchPage, error) {
		if params.Get("page") == "1" {
			// The older request parks until the newer one has finished.
			<-release
			return &api.SearchPage{Results: profiles("old"), Page: 1, Limit: 12, Total: 1, TotalPages: 1}, nil
		}
		return &api.SearchPage{Results: profiles("new"), Page: 2, Limit: 12, Total: 13, TotalPages: 2}, nil
	}
	ctrl := search.NewController(backend, "tok")

	var wg sync.WaitGroup
	wg.Add(1)
	staleApplied := true
	go func() {
		defer wg.Done()
		_, staleApplied = ctrl.Fetch(context.Background(), search.FilterSet{}, 1)
	}()

	// Give the first fetch time to be issued, then supersede it.
	time.Sleep(20 * time.Millisecond)
	snap, latest := ctrl.Fetch(context.Background(), search.FilterSet{}, 2)
	require.True(t, latest)
	require.Equal(t, "new", snap.Results[0].ID)

	close(release)
	wg.Wait()

	assert.False(t, staleApplied, "stale response must report itself superseded")
	final := ctrl.Snapshot()
	require.Len(t, final.Results, 1)
	assert.Equal(t, "new", final.Results[0].ID, "newer results must survive the stale arrival")
	assert.Equal(t, 2, final.Pagination.Page)
}

func TestLocalSort_ReordersWithoutTouchingPagination(t *testing.T) {
	now := time.Now()
	backend := &fakeSearcher{respond: func(url.Values) (*api.SearchPage, error) {
		return &api.SearchPage{
			Results: []api.Profile{
				{ID: "x", Name: "Charu", Age: 40, CreatedAt: now.Add(-time.Hour)},
				{ID: "y", Name: "Asha", Age: 22, CreatedAt: now},
				{ID: "z", Name: "Bina", Age: 31, CreatedAt: now.Add(-2 * time.Hour)},
			},
			Page: 1, Limit: 12, Total: 3, TotalPages: 1,
		}, nil
	}}
	ctrl := search.NewController(backend, "tok")
	before, _ := ctrl.Fetch(context.Background(), search.FilterSet{}, 1)

	snap := ctrl.LocalSort(search.SortAge)
	ages := []int{snap.Results[0].Age, snap.Results[1].Age, snap.Results[2].Age}
	assert.Equal(t, []int{22, 31, 40}, ages)
	assert.Equal(t, before.Pagination, snap.Pagination, "sort must not mutate pagination")

	snap = ctrl.LocalSort(search.SortName)
	assert.Equal(t, "Asha", snap.Results[0].Name)
	assert.Equal(t, "Bina", snap.Results[1].Name)

	snap = ctrl.LocalSort(search.SortNewest)
	assert.Equal(t, "y", snap.Results[0].ID)

	snap = ctrl.LocalSort(search.SortOldest)
	assert.Equal(t, "z", snap.Results[0].ID)
}
