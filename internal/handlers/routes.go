package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lifecounter/internal/game"
	"lifecounter/internal/theme"
)

// NewRouter wires every handler onto a chi router. static, if non-nil, is
// served under /static.
func NewRouter(store *game.Store, themes *theme.Service, static http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	if static != nil {
		r.Mount("/static", http.StripPrefix("/static", static))
	}

	homeHandler := NewHomeHandler(store, themes)
	gameHandler := NewGameHandler(store, themes)
	themeHandler := NewThemeHandler(store, themes)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		homeHandler.RegisterRoutes(r)
		gameHandler.RegisterRoutes(r)
		themeHandler.RegisterRoutes(r)
	})
	gameHandler.RegisterStreamRoutes(r)
	return r
}
