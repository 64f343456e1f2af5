package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lifecounter/internal/game"
	"lifecounter/internal/theme"
)

// ThemeHandler flips the persisted light/dark preference.
type ThemeHandler struct {
	store *game.Store
	theme *theme.Service
}

func NewThemeHandler(store *game.Store, themes *theme.Service) *ThemeHandler {
	return &ThemeHandler{store: store, theme: themes}
}

func (h *ThemeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/theme", h.current)
	r.Post("/theme/toggle", h.toggle)
}

func (h *ThemeHandler) current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"theme":   h.theme.Mode(),
		"palette": h.theme.Palette(),
	})
}

func (h *ThemeHandler) toggle(w http.ResponseWriter, r *http.Request) {
	mode := h.theme.Toggle(r.Context())
	log.Printf("theme toggled mode=%s", mode)
	h.store.PublishAll(game.EventTheme)
	finish(w, r)
}
