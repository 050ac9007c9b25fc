package search_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
	"github.com/Amityadav08/SLVNK-Frontend/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 150 * time.Millisecond

// startScheduler runs a scheduler against backend and returns a channel of
// emitted updates plus a stop function.
func startScheduler(t *testing.T, backend *fakeSearcher) (*search.Scheduler, chan search.Update, func()) {
	t.Helper()
	updates := make(chan search.Update, 16)
	ctrl := search.NewController(backend, "tok")
	sched := search.NewScheduler(ctrl, func(u search.Update) { updates <- u }, search.WithDebounce(testDebounce))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sched.Run(ctx)
	}()
	stop := func() {
		cancel()
		<-done
	}
	return sched, updates, stop
}

func waitUpdate(t *testing.T, updates chan search.Update) search.Update {
	t.Helper()
	select {
	case u := <-updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a scheduler update")
		return search.Update{}
	}
}

func TestScheduler_InitialLoadFetchesPageOne(t *testing.T) {
	backend := &fakeSearcher{}
	_, updates, stop := startScheduler(t, backend)
	defer stop()

	u := waitUpdate(t, updates)
	assert.False(t, u.ScrollTop, "initial load must not scroll")
	assert.Equal(t, "1", backend.lastCall().Get("page"))
}

func TestScheduler_RapidFilterEditsCoalesceIntoOneFetch(t *testing.T) {
	backend := &fakeSearcher{}
	sched, updates, stop := startScheduler(t, backend)
	defer stop()

	waitUpdate(t, updates) // initial load
	require.Equal(t, 1, backend.callCount())

	// Three edits inside the debounce window; only the last one counts.
	sched.UpdateFilters(search.FilterSet{"gender": "F"})
	time.Sleep(testDebounce / 4)
	sched.UpdateFilters(search.FilterSet{"gender": "Female"})
	time.Sleep(testDebounce / 4)
	sched.UpdateFilters(search.FilterSet{"gender": "Female", "minAge": "25", "maxAge": "35"})

	u := waitUpdate(t, updates)
	assert.Equal(t, 2, backend.callCount(), "the debounce window must coalesce edits into one fetch")

	params := backend.lastCall()
	assert.Equal(t, "Female", params.Get("gender"))
	assert.Equal(t, "25", params.Get("minAge"))
	assert.Equal(t, "35", params.Get("maxAge"))
	assert.Equal(t, "1", params.Get("page"), "a filter change must reset to page 1")
	assert.False(t, u.ScrollTop)
}

func TestScheduler_PageChangeFetchesImmediately(t *testing.T) {
	backend := &fakeSearcher{respond: func(params url.Values) (*api.SearchPage, error) {
		return &api.SearchPage{Page: 1, Limit: 12, Total: 60, TotalPages: 5}, nil
	}}
	sched, updates, stop := startScheduler(t, backend)
	defer stop()

	waitUpdate(t, updates) // initial load

	start := time.Now()
	sched.SetPage(3)
	u := waitUpdate(t, updates)

	assert.Less(t, time.Since(start), testDebounce, "page changes must not wait out the debounce window")
	assert.Equal(t, "3", backend.lastCall().Get("page"))
	assert.True(t, u.ScrollTop, "page changes scroll the grid back to the top")
}

func TestScheduler_FilterChangeAfterPageChangeResetsToPageOne(t *testing.T) {
	backend := &fakeSearcher{}
	sched, updates, stop := startScheduler(t, backend)
	defer stop()

	waitUpdate(t, updates)
	sched.SetPage(4)
	waitUpdate(t, updates)
	require.Equal(t, "4", backend.lastCall().Get("page"))

	sched.UpdateFilters(search.FilterSet{"religion": "Hindu"})
	waitUpdate(t, updates)
	assert.Equal(t, "1", backend.lastCall().Get("page"))
	assert.Equal(t, "Hindu", backend.lastCall().Get("religion"))
}

func TestScheduler_SortEmitsWithoutFetching(t *testing.T) {
	backend := &fakeSearcher{respond: func(url.Values) (*api.SearchPage, error) {
		return &api.SearchPage{
			Results: []api.Profile{{ID: "a", Age: 40}, {ID: "b", Age: 22}},
			Page:    1, Limit: 12, Total: 2, TotalPages: 1,
		}, nil
	}}
	sched, updates, stop := startScheduler(t, backend)
	defer stop()

	waitUpdate(t, updates)
	before := backend.callCount()

	sched.Sort(search.SortAge)
	u := waitUpdate(t, updates)

	assert.Equal(t, before, backend.callCount(), "local sort must not hit the backend")
	require.Len(t, u.Snapshot.Results, 2)
	assert.Equal(t, 22, u.Snapshot.Results[0].Age)
}
