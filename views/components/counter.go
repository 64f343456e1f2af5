package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"lifecounter/internal/viewmodel"
)

// CounterID is the DOM id of a counter fragment.
func CounterID(id int) string {
	return "counter-" + strconv.Itoa(id)
}

// Counter renders one player's card: name, displayed life, the transient
// delta indicator and the +/- buttons.
func Counter(data viewmodel.Counter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := NewWriter(w)
		class := "counter"
		if data.Inverted {
			class += " counter--inverted"
		}
		if data.Animating {
			class += " counter--animating"
		}
		hw.Raw(`<div class="` + class + `" id="` + CounterID(data.ID) + `" data-pulse="`)
		hw.Int(data.Pulse)
		hw.Raw(`" style="--pulse-ms:`)
		hw.Int(data.PulseMs)
		hw.Raw(`ms;--step-ms:`)
		hw.Int(data.StepMs)
		hw.Raw(`ms">`)
		hw.Raw(`<div class="counter__name">`)
		hw.Text(data.Name)
		hw.Raw(`</div>`)
		hw.Raw(`<div class="counter__life">`)
		hw.Int(data.Displayed)
		hw.Raw(`</div>`)
		hw.Raw(`<div class="counter__delta">`)
		hw.Text(data.Indicator)
		hw.Raw(`</div>`)
		hw.Raw(`<div class="counter__buttons">`)
		pressButton(hw, data.ID, "decrement", "-")
		pressButton(hw, data.ID, "increment", "+")
		hw.Raw(`</div></div>`)
		return hw.Err()
	})
}

func pressButton(hw *Writer, id int, action string, label string) {
	hw.Raw(`<form method="POST" action="/players/`)
	hw.Int(id)
	hw.Raw(`/` + action + `" data-press><button type="submit" class="button">`)
	hw.Text(label)
	hw.Raw(`</button></form>`)
}
