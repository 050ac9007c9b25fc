package search

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/Amityadav08/SLVNK-Frontend/internal/api"
)

// DefaultLimit is the page size of the search grid.
const DefaultLimit = 12

// Searcher is the slice of the backend client the controller needs.
type Searcher interface {
	Search(ctx context.Context, token string, params url.Values) (*api.SearchPage, error)
}

// Pagination is the normalized pagination metadata for the current page.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Snapshot is an immutable copy of the controller state, safe to hand to a
// renderer while the controller keeps moving.
type Snapshot struct {
	Results    []api.Profile
	Pagination Pagination
	Loading    bool
	Err        string
	Sort       string
}

// Controller owns the fetch lifecycle for one search session: loading and
// error flags, the currently displayed page of results, and the pagination
// metadata reported by the backend. Every fetch is tagged with a sequence
// number; a response that was superseded by a newer fetch never overwrites
// state (last-response-wins).
type Controller struct {
	searcher Searcher
	token    string

	mu         sync.Mutex
	seq        uint64
	results    []api.Profile
	pagination Pagination
	loading    bool
	err        string
	sortKey    string
}

// NewController creates a controller issuing searches with token.
func NewController(searcher Searcher, token string) *Controller {
	return &Controller{
		searcher: searcher,
		token:    token,
		pagination: Pagination{
			Page:       1,
			Limit:      DefaultLimit,
			TotalPages: 1,
		},
		sortKey: SortNewest,
	}
}

// Fetch runs one search round trip and applies the outcome to the
// controller state. The boolean result is false when a newer fetch was
// issued while this one was in flight, in which case the state was left
// alone and the returned snapshot reflects the newer activity.
func (c *Controller) Fetch(ctx context.Context, filters FilterSet, page int) (Snapshot, bool) {
	c.mu.Lock()
	c.seq++
	id := c.seq
	c.loading = true
	c.err = ""
	limit := c.pagination.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	c.mu.Unlock()

	params := filters.Params(page, limit)
	result, err := c.searcher.Search(ctx, c.token, params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if id != c.seq {
		// A newer request owns the state now; drop this response.
		return c.snapshotLocked(), false
	}
	c.loading = false

	if err != nil {
		c.err = api.Message(err)
		// No stale grid behind the error banner.
		c.results = nil
		return c.snapshotLocked(), true
	}

	c.results = result.Results
	c.pagination = normalize(result, limit)
	return c.snapshotLocked(), true
}

// normalize fills in the client-side defaults for any pagination field the
// backend left absent.
func normalize(page *api.SearchPage, requestedLimit int) Pagination {
	p := Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = requestedLimit
	}
	if p.Total < 0 {
		p.Total = 0
	}
	if p.TotalPages <= 0 {
		p.TotalPages = 1
	}
	return p
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	results := make([]api.Profile, len(c.results))
	copy(results, c.results)
	return Snapshot{
		Results:    results,
		Pagination: c.pagination,
		Loading:    c.loading,
		Err:        c.err,
		Sort:       c.sortKey,
	}
}

// Sort keys for the page-local re-sort. Sorting never refetches and never
// touches pagination; the order is lost on the next server fetch.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortName   = "name"
	SortAge    = "age"
)

// LocalSort reorders the currently loaded page in memory.
func (c *Controller) LocalSort(key string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sortKey = key
	switch key {
	case SortNewest:
		sort.SliceStable(c.results, func(i, j int) bool {
			return c.results[i].CreatedAt.After(c.results[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(c.results, func(i, j int) bool {
			return c.results[i].CreatedAt.Before(c.results[j].CreatedAt)
		})
	case SortName:
		sort.SliceStable(c.results, func(i, j int) bool {
			return strings.ToLower(c.results[i].Name) < strings.ToLower(c.results[j].Name)
		})
	case SortAge:
		sort.SliceStable(c.results, func(i, j int) bool {
			return c.results[i].Age < c.results[j].Age
		})
	}
	return c.snapshotLocked()
}
