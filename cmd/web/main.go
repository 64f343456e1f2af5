package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lifecounter/internal/config"
	"lifecounter/internal/game"
	"lifecounter/internal/handlers"
	"lifecounter/internal/storage"
	"lifecounter/internal/storage/sqlite"
	"lifecounter/internal/theme"
	"lifecounter/pkg/realtime"
)

func main() {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var prefs theme.Store
	if cfg.MemoryStore {
		prefs = storage.NewMemory()
	} else {
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		prefs = db
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	themes := theme.NewService(prefs, theme.Fixed(cfg.SystemMode()))
	log.Printf("theme loaded mode=%s", themes.Load(ctx))

	store := game.NewStore(realtime.ClockScheduler{}, cfg.CounterOptions())
	go pruneTables(ctx, store, cfg.TableIdle)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.Fatal(err)
	}
	r := handlers.NewRouter(store, themes, http.FileServer(http.FS(staticFS)))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on http://localhost%s", cfg.Addr())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func pruneTables(ctx context.Context, store *game.Store, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Prune(maxIdle); n > 0 {
				log.Printf("pruned idle tables count=%d remaining=%d", n, store.Len())
			}
		}
	}
}

//go:embed static/*
var embeddedStatic embed.FS
