package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/Amityadav08/SLVNK-Frontend/internal/search"
	"github.com/Amityadav08/SLVNK-Frontend/internal/session"
	"github.com/Amityadav08/SLVNK-Frontend/internal/view"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/layouts"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/pages"
	"github.com/Amityadav08/SLVNK-Frontend/web/templates/partials"
)

const (
	// writeWait bounds how long a single socket write may block.
	writeWait = 10 * time.Second

	// outboundBuffer is the per-connection queue of rendered fragments.
	outboundBuffer = 16
)

// SearchHandler serves the member search page and its live socket. Each
// socket connection runs its own scheduler goroutine: filter edits settle
// through the debounce window, page clicks fetch immediately, and every
// resulting snapshot is pushed back as an out-of-band fragment.
type SearchHandler struct {
	backend  search.Searcher
	upgrader websocket.Upgrader
	opts     []search.Option
}

// NewSearchHandler creates a new SearchHandler. opts are passed through to
// each connection's scheduler; tests use them to shrink the debounce.
func NewSearchHandler(backend search.Searcher, opts ...search.Option) *SearchHandler {
	return &SearchHandler{
		backend: backend,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		opts: opts,
	}
}

// SearchGet renders the search page (GET /search) with a synchronous
// first-page fetch, so the grid is populated before the socket connects.
func (h *SearchHandler) SearchGet(c echo.Context) error {
	filters := search.FilterSetFromForm(c.QueryParams())

	ctrl := search.NewController(h.backend, session.Token(c))
	snap, _ := ctrl.Fetch(c.Request().Context(), filters, 1)

	flashes := view.GetFlashData(c)
	return render(c, layouts.Base("Search", flashes, true, pages.Search(filters, snap)))
}

// SearchWS upgrades to the search socket (GET /search/ws).
func (h *SearchHandler) SearchWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	out := make(chan []byte, outboundBuffer)

	// The sink runs on fetch goroutines; it only ever touches the channel.
	sink := func(u search.Update) {
		fragment, err := renderUpdate(u)
		if err != nil {
			slog.Error("Failed to render search update", "error", err)
			return
		}
		select {
		case out <- fragment:
		case <-ctx.Done():
		}
	}

	ctrl := search.NewController(h.backend, session.Token(c))
	scheduler := search.NewScheduler(ctrl, sink, h.opts...)
	go scheduler.Run(ctx)

	// Write pump: one goroutine owns all writes to the connection.
	go func() {
		for {
			select {
			case fragment := <-out:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, fragment); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Read loop: each inbound message is one interaction from the page.
	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Search socket closed unexpectedly", "error", err)
			}
			return nil
		}
		dispatch(scheduler, msg)
	}
}

// dispatch routes one socket message to the scheduler.
func dispatch(s *search.Scheduler, msg map[string]any) {
	switch str(msg["type"]) {
	case "page":
		if page, err := strconv.Atoi(str(msg["page"])); err == nil {
			s.SetPage(page)
		}
	case "sort":
		if key := str(msg["sort"]); key != "" {
			s.Sort(key)
		}
	case "filters":
		values := url.Values{}
		for _, key := range search.FilterFields {
			if v := str(msg[key]); v != "" {
				values.Set(key, v)
			}
		}
		s.UpdateFilters(search.FilterSetFromForm(values))
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// renderUpdate turns one scheduler update into the out-of-band fragment
// pushed down the socket.
func renderUpdate(u search.Update) ([]byte, error) {
	nodes := []cmp.Node{partials.SearchResults(u.Snapshot, true)}
	if u.ScrollTop {
		nodes = append(nodes, partials.ScrollAnchor())
	}

	var buf bytes.Buffer
	if err := cmp.Group(nodes).Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
