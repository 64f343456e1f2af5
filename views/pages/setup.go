package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"lifecounter/internal/viewmodel"
	"lifecounter/views/components"
)

// SetupPage renders the player count choices and name inputs.
func SetupPage(data viewmodel.SetupPage) templ.Component {
	return Layout(data.Title, data.Theme, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<main class="setup"><h1 class="setup__title">`)
		hw.Text(data.Title)
		hw.Raw(`</h1><p>Select number of players</p><div class="setup__options">`)
		for _, n := range data.Choices {
			class := "button"
			if n == data.PlayerCount {
				class += " button--selected"
			}
			hw.Raw(`<form method="POST" action="/setup/count"><input type="hidden" name="count" value="`)
			hw.Int(n)
			hw.Raw(`"><button type="submit" class="` + class + `">`)
			hw.Int(n)
			hw.Raw(` Players</button></form>`)
		}
		hw.Raw(`</div><form method="POST" action="/setup/start" class="setup__names">`)
		for _, field := range data.Names {
			hw.Raw(`<input class="input" type="text" name="name" maxlength="24" autocomplete="off" value="`)
			hw.Text(field.Value)
			hw.Raw(`" placeholder="`)
			hw.Text(field.Placeholder)
			hw.Raw(`">`)
		}
		hw.Raw(`<button type="submit" class="button button--start">Start Game</button></form></main>`)
		return hw.Err()
	}))
}
