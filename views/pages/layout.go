package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"lifecounter/internal/viewmodel"
	"lifecounter/views/components"
)

// Layout wraps body in the document shell with the theme's colors.
func Layout(title string, theme viewmodel.Theme, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1, viewport-fit=cover">`)
		hw.Raw(`<title>`)
		hw.Text(title)
		hw.Raw(`</title><link rel="stylesheet" href="/static/app.css"><style>:root{`)
		hw.Raw(`--bg:` + cssColor(theme.Background) + `;`)
		hw.Raw(`--text:` + cssColor(theme.Text) + `;`)
		hw.Raw(`--card:` + cssColor(theme.Card) + `;`)
		hw.Raw(`--button:` + cssColor(theme.Button) + `;`)
		hw.Raw(`}</style></head><body data-theme="`)
		hw.Text(theme.Mode)
		hw.Raw(`">`)
		if hw.Err() != nil {
			return hw.Err()
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.Raw(`<form method="POST" action="/theme/toggle" class="theme-toggle"><button type="submit" class="button">`)
		if theme.Mode == "dark" {
			hw.Raw(`Light mode`)
		} else {
			hw.Raw(`Dark mode`)
		}
		hw.Raw(`</button></form>`)
		hw.Raw(`<script src="/static/app.js" defer></script></body></html>`)
		return hw.Err()
	})
}

// cssColor passes through hex colors and drops anything else.
func cssColor(value string) string {
	if len(value) < 2 || value[0] != '#' {
		return "inherit"
	}
	for _, r := range value[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return "inherit"
		}
	}
	return value
}
