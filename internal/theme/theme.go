// Package theme keeps the process-wide light/dark preference.
package theme

import (
	"context"
	"log"
	"strings"
	"sync"
)

// StorageKey is the key the preference is persisted under.
const StorageKey = "appTheme"

// Mode is a theme name.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark".
func ParseMode(value string) (Mode, bool) {
	switch Mode(strings.TrimSpace(strings.ToLower(value))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Toggled returns the other mode.
func (m Mode) Toggled() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette holds the colors for a mode.
type Palette struct {
	Background string
	Text       string
	Card       string
	Button     string
}

var palettes = map[Mode]Palette{
	Light: {Background: "#fff", Text: "#000", Card: "#e0e0e0", Button: "#007aff"},
	Dark:  {Background: "#121212", Text: "#fff", Card: "#1e1e1e", Button: "#ff5555"},
}

// Palette returns the colors for m, falling back to dark.
func (m Mode) Palette() Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[Dark]
}

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// SystemPreference reports the platform's light/dark setting.
type SystemPreference func() Mode

// Fixed returns a SystemPreference that always reports m.
func Fixed(m Mode) SystemPreference {
	return func() Mode { return m }
}

// Service owns the current mode. Construct one and pass it to whatever needs it.
type Service struct {
	mu     sync.RWMutex
	store  Store
	system SystemPreference
	mode   Mode
}

// NewService creates a service in the system mode; call Load to read the
// stored preference.
func NewService(store Store, system SystemPreference) *Service {
	if system == nil {
		system = Fixed(Dark)
	}
	return &Service{store: store, system: system, mode: normalize(system())}
}

func normalize(m Mode) Mode {
	if m == Light {
		return Light
	}
	return Dark
}

// Load reads the stored preference. A missing, invalid or unreadable value
// falls back to the system preference.
func (s *Service) Load(ctx context.Context) Mode {
	mode := normalize(s.system())
	if s.store != nil {
		value, ok, err := s.store.Get(ctx, StorageKey)
		switch {
		case err != nil:
			log.Printf("theme load failed key=%s err=%v", StorageKey, err)
		case ok:
			if parsed, valid := ParseMode(value); valid {
				mode = parsed
			}
		}
	}
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return mode
}

// Toggle flips the mode and persists it. A failed write is logged and the
// new mode is kept.
func (s *Service) Toggle(ctx context.Context) Mode {
	s.mu.Lock()
	s.mode = s.mode.Toggled()
	mode := s.mode
	s.mu.Unlock()
	s.persist(ctx, mode)
	return mode
}

// SetMode switches to m and persists it.
func (s *Service) SetMode(ctx context.Context, m Mode) Mode {
	m = normalize(m)
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	s.persist(ctx, m)
	return m
}

func (s *Service) persist(ctx context.Context, m Mode) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, StorageKey, string(m)); err != nil {
		log.Printf("theme save failed key=%s mode=%s err=%v", StorageKey, m, err)
	}
}

// Mode returns the current mode.
func (s *Service) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Palette returns the colors of the current mode.
func (s *Service) Palette() Palette {
	return s.Mode().Palette()
}
