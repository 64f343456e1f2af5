package handlers

import (
	"net/http"
	"strconv"
	"time"

	"lifecounter/internal/counter"
	"lifecounter/internal/game"
	"lifecounter/internal/roster"
	"lifecounter/internal/session"
	"lifecounter/internal/theme"
	"lifecounter/internal/viewmodel"
)

const (
	tableCookieName = "lifecounter_table"
	pageTitle       = "Life Counter"
)

// tableFor returns the caller's table, creating one and setting the cookie
// on first visit or after the server forgot it.
func tableFor(w http.ResponseWriter, r *http.Request, store *game.Store) *game.Table {
	if cookie, err := r.Cookie(tableCookieName); err == nil {
		if t, ok := store.GetTable(cookie.Value); ok {
			return t
		}
	}
	t := store.CreateTable()
	http.SetCookie(w, &http.Cookie{
		Name:     tableCookieName,
		Value:    t.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return t
}

// existingTable returns the caller's table without creating one.
func existingTable(r *http.Request, store *game.Store) (*game.Table, bool) {
	cookie, err := r.Cookie(tableCookieName)
	if err != nil {
		return nil, false
	}
	return store.GetTable(cookie.Value)
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func themeView(svc *theme.Service) viewmodel.Theme {
	mode := svc.Mode()
	p := mode.Palette()
	return viewmodel.Theme{
		Mode:       string(mode),
		Background: p.Background,
		Text:       p.Text,
		Card:       p.Card,
		Button:     p.Button,
	}
}

func buildSetupPage(snap game.Snapshot, th viewmodel.Theme) viewmodel.SetupPage {
	names := make([]viewmodel.NameField, 0, len(snap.Names))
	for i, value := range snap.Names {
		names = append(names, viewmodel.NameField{
			Index:       i,
			Value:       value,
			Placeholder: roster.DefaultName(i),
		})
	}
	return viewmodel.SetupPage{
		Title:       pageTitle,
		Theme:       th,
		Choices:     roster.PlayerCountChoices,
		PlayerCount: snap.PlayerCount,
		Names:       names,
	}
}

func buildHomePage(snap game.Snapshot, th viewmodel.Theme, opts counter.Options) viewmodel.HomePage {
	rows := make([][]viewmodel.Counter, 0, 2)
	for _, ids := range snap.Layout.Rows(len(snap.Counters)) {
		row := make([]viewmodel.Counter, 0, len(ids))
		for _, id := range ids {
			if id < len(snap.Counters) {
				row = append(row, buildCounter(snap.Counters[id], snap.Layout, opts))
			}
		}
		rows = append(rows, row)
	}
	return viewmodel.HomePage{
		Title:  pageTitle,
		Theme:  th,
		Layout: string(snap.Layout),
		Rows:   rows,
	}
}

func buildCounter(f counter.Frame, layout session.Layout, opts counter.Options) viewmodel.Counter {
	return viewmodel.Counter{
		ID:        f.PlayerID,
		Name:      f.Name,
		Displayed: f.Displayed,
		Indicator: f.Indicator,
		Pulse:     f.Pulse,
		PulseMs:   int(opts.PulseDuration / time.Millisecond),
		StepMs:    int(opts.StepInterval / time.Millisecond),
		Animating: f.State == counter.StateStepping,
		Inverted:  layout == session.LayoutStacked && f.PlayerID == 0,
	}
}
