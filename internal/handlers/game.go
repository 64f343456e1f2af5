package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"lifecounter/internal/game"
	"lifecounter/internal/session"
	"lifecounter/internal/theme"
	"lifecounter/views/components"
)

// GameHandler serves the session screen: counter presses, reset and the
// realtime streams.
type GameHandler struct {
	store *game.Store
	theme *theme.Service
}

func NewGameHandler(store *game.Store, themes *theme.Service) *GameHandler {
	return &GameHandler{store: store, theme: themes}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Route("/players/{id}", func(r chi.Router) {
		r.Post("/increment", h.increment)
		r.Post("/decrement", h.decrement)
	})
	r.Post("/reset", h.reset)
	r.Get("/counters/{id}", h.counterFragment)
}

// RegisterStreamRoutes mounts the long-lived SSE and websocket endpoints.
// They must not sit behind a request timeout.
func (h *GameHandler) RegisterStreamRoutes(r chi.Router) {
	r.Get("/stream", h.stream)
	r.Get("/ws", h.socket)
}

func (h *GameHandler) increment(w http.ResponseWriter, r *http.Request) {
	h.press(w, r, func(id int) session.Command { return session.Increment{ID: id} })
}

func (h *GameHandler) decrement(w http.ResponseWriter, r *http.Request) {
	h.press(w, r, func(id int) session.Command { return session.Decrement{ID: id} })
}

func (h *GameHandler) press(w http.ResponseWriter, r *http.Request, build func(id int) session.Command) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}
	table, ok := existingTable(r, h.store)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	switch err := table.Press(build(id)); {
	case errors.Is(err, session.ErrUnknownPlayer):
		http.NotFound(w, r)
		return
	case errors.Is(err, game.ErrNoSession):
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case err != nil:
		log.Printf("press table=%s player=%d err=%v", table.ID, id, err)
	}
	finish(w, r)
}

func (h *GameHandler) reset(w http.ResponseWriter, r *http.Request) {
	table, ok := existingTable(r, h.store)
	if ok {
		if err := table.Reset(); err != nil {
			log.Printf("reset table=%s err=%v", table.ID, err)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *GameHandler) counterFragment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}
	table, ok := existingTable(r, h.store)
	if !ok {
		http.NotFound(w, r)
		return
	}
	component, ok := counterComponent(table, id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, r, component)
}

func (h *GameHandler) stream(w http.ResponseWriter, r *http.Request) {
	table, ok := existingTable(r, h.store)
	if !ok {
		http.NotFound(w, r)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	hub := h.store.Broadcaster(table.ID)
	if hub == nil {
		http.NotFound(w, r)
		return
	}
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	sendCounter := func(id int) {
		if component, ok := counterComponent(table, id); ok {
			writeSSE(w, game.CounterEvent(id), renderToString(r, component))
		}
	}

	writeSSE(w, game.EventScene, string(table.Scene()))
	for _, frame := range table.Snapshot().Counters {
		sendCounter(frame.PlayerID)
	}
	flusher.Flush()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			switch event {
			case game.EventScene:
				writeSSE(w, game.EventScene, string(table.Scene()))
			case game.EventHaptic:
				writeSSE(w, game.EventHaptic, "heavy")
			case game.EventTheme:
				writeSSE(w, game.EventTheme, string(h.theme.Mode()))
			default:
				if id, ok := game.ParseCounterEvent(event); ok {
					sendCounter(id)
				}
			}
			flusher.Flush()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func counterComponent(table *game.Table, id int) (templ.Component, bool) {
	snap := table.Snapshot()
	if id < 0 || id >= len(snap.Counters) {
		return nil, false
	}
	return components.Counter(buildCounter(snap.Counters[id], snap.Layout, table.Options())), true
}
