package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"lifecounter/internal/viewmodel"
	"lifecounter/views/components"
)

// HomePage renders the counters in the session's layout.
func HomePage(data viewmodel.HomePage) templ.Component {
	return Layout(data.Title, data.Theme, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<main class="board board--`)
		hw.Text(data.Layout)
		hw.Raw(`" data-stream="/stream">`)
		for _, row := range data.Rows {
			hw.Raw(`<div class="board__row">`)
			if hw.Err() != nil {
				return hw.Err()
			}
			for _, c := range row {
				if err := components.Counter(c).Render(ctx, w); err != nil {
					return err
				}
			}
			hw.Raw(`</div>`)
		}
		hw.Raw(`<form method="POST" action="/reset" class="board__reset"><button type="submit" class="button">Reset Game</button></form></main>`)
		return hw.Err()
	}))
}
