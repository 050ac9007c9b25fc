package search

import (
	"context"
	"log/slog"
	"time"
)

// DebounceInterval is how long filter edits are allowed to settle before a
// fetch is issued.
const DebounceInterval = 500 * time.Millisecond

// Update is what the scheduler emits after each state change worth
// re-rendering. ScrollTop is set on page-change fetches so the view can
// jump back to the top of the grid.
type Update struct {
	Snapshot  Snapshot
	Filters   FilterSet
	ScrollTop bool
}

// Scheduler decides when the backend is actually queried for one search
// session. Filter edits are coalesced: each edit restarts a debounce timer,
// and only the final settled filter state is fetched, with the page reset
// to 1. Page changes fetch immediately. All decisions happen on a single
// goroutine; fetches run detached, and the controller's sequence tagging
// guarantees stale responses never clobber newer ones.
type Scheduler struct {
	ctrl     *Controller
	sink     func(Update)
	debounce time.Duration

	filterCh chan FilterSet
	pageCh   chan int
	sortCh   chan string
}

// Option tweaks scheduler behavior.
type Option func(*Scheduler)

// WithDebounce overrides the debounce window. Tests use this to keep the
// suite fast; production code should leave the default alone.
func WithDebounce(d time.Duration) Option {
	return func(s *Scheduler) { s.debounce = d }
}

// NewScheduler wires a scheduler to a controller. sink receives every
// update the view should render; it is called from fetch goroutines and
// must be safe for concurrent use.
func NewScheduler(ctrl *Controller, sink func(Update), opts ...Option) *Scheduler {
	s := &Scheduler{
		ctrl:     ctrl,
		sink:     sink,
		debounce: DebounceInterval,
		filterCh: make(chan FilterSet, 8),
		pageCh:   make(chan int, 8),
		sortCh:   make(chan string, 8),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateFilters replaces the filter set. The fetch fires only after the
// debounce window elapses without further edits.
func (s *Scheduler) UpdateFilters(fs FilterSet) { s.filterCh <- fs.Clone() }

// SetPage requests a different result page; the fetch fires immediately.
func (s *Scheduler) SetPage(page int) { s.pageCh <- page }

// Sort re-orders the loaded page locally without a server round trip.
func (s *Scheduler) Sort(key string) { s.sortCh <- key }

// Run is the scheduler's event loop. It performs an initial first-page
// fetch, then reacts to filter, page and sort events until ctx is
// cancelled. Run must be called exactly once.
func (s *Scheduler) Run(ctx context.Context) {
	var (
		filters = FilterSet{}
		page    = 1
	)

	// The debounce timer starts stopped; it only runs while filter edits
	// are settling.
	timer := time.NewTimer(s.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	resetTimer := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.debounce)
	}

	// Initial load: page 1, no constraints, no scroll.
	s.fetch(ctx, filters, page, false)

	for {
		select {
		case <-ctx.Done():
			return

		case fs := <-s.filterCh:
			filters = fs
			resetTimer()

		case <-timer.C:
			// Filters settled: a filter change always lands on page 1.
			page = 1
			s.fetch(ctx, filters, page, false)

		case p := <-s.pageCh:
			if p < 1 {
				p = 1
			}
			page = p
			s.fetch(ctx, filters, page, true)

		case key := <-s.sortCh:
			snap := s.ctrl.LocalSort(key)
			s.sink(Update{Snapshot: snap, Filters: filters.Clone()})
		}
	}
}

// fetch issues one backend query without blocking the event loop. Updates
// for superseded responses are dropped.
func (s *Scheduler) fetch(ctx context.Context, filters FilterSet, page int, scrollTop bool) {
	fs := filters.Clone()
	go func() {
		snap, latest := s.ctrl.Fetch(ctx, fs, page)
		if !latest {
			slog.Debug("discarding superseded search response", "page", page)
			return
		}
		if ctx.Err() != nil {
			return
		}
		s.sink(Update{Snapshot: snap, Filters: fs, ScrollTop: scrollTop})
	}()
}
