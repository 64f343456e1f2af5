package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lifecounter/internal/game"
	"lifecounter/internal/nav"
	"lifecounter/internal/roster"
	"lifecounter/internal/theme"
	"lifecounter/views/pages"
)

// HomeHandler serves the current scene and the setup form.
type HomeHandler struct {
	store *game.Store
	theme *theme.Service
}

func NewHomeHandler(store *game.Store, themes *theme.Service) *HomeHandler {
	return &HomeHandler{store: store, theme: themes}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Route("/setup", func(r chi.Router) {
		r.Post("/count", h.setCount)
		r.Post("/names", h.setNames)
		r.Post("/start", h.start)
	})
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	table := tableFor(w, r, h.store)
	snap := table.Snapshot()
	th := themeView(h.theme)
	if snap.Scene == nav.SceneHome {
		render(w, r, pages.HomePage(buildHomePage(snap, th, table.Options())))
		return
	}
	render(w, r, pages.SetupPage(buildSetupPage(snap, th)))
}

func (h *HomeHandler) setCount(w http.ResponseWriter, r *http.Request) {
	table := tableFor(w, r, h.store)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	count := parseInt(r.FormValue("count"), 0)
	if err := table.SetPlayerCount(count); err != nil {
		if errors.Is(err, roster.ErrInvalidPlayerCount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("set player count table=%s count=%d err=%v", table.ID, count, err)
	}
	finish(w, r)
}

func (h *HomeHandler) setNames(w http.ResponseWriter, r *http.Request) {
	table := tableFor(w, r, h.store)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if err := table.SetNames(r.Form["name"]); err != nil {
		log.Printf("set names table=%s err=%v", table.ID, err)
	}
	finish(w, r)
}

func (h *HomeHandler) start(w http.ResponseWriter, r *http.Request) {
	table := tableFor(w, r, h.store)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if err := table.SetNames(r.Form["name"]); err != nil {
		log.Printf("start names table=%s err=%v", table.ID, err)
		finish(w, r)
		return
	}
	handoff, err := table.Start()
	if err != nil {
		log.Printf("start table=%s err=%v", table.ID, err)
		finish(w, r)
		return
	}
	log.Printf("session started table=%s players=%d", table.ID, handoff.PlayerCount)
	finish(w, r)
}
