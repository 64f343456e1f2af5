package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"lifecounter/internal/viewmodel"
)

func renderCounter(t *testing.T, data viewmodel.Counter) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Counter(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestCounter_Renders(t *testing.T) {
	html := renderCounter(t, viewmodel.Counter{
		ID:        2,
		Name:      "Ana",
		Displayed: 38,
		Indicator: "-1",
		Pulse:     4,
		PulseMs:   100,
		StepMs:    80,
		Animating: true,
	})
	for _, want := range []string{
		`id="counter-2"`,
		`data-pulse="4"`,
		`counter--animating`,
		`>Ana<`,
		`>38<`,
		`>-1<`,
		`action="/players/2/increment"`,
		`action="/players/2/decrement"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
	if strings.Contains(html, "counter--inverted") {
		t.Error("counter should not be inverted")
	}
}

func TestCounter_EscapesName(t *testing.T) {
	html := renderCounter(t, viewmodel.Counter{Name: `<script>alert(1)</script>`})
	if strings.Contains(html, "<script>") {
		t.Errorf("name was not escaped: %s", html)
	}
}

func TestCounter_Inverted(t *testing.T) {
	html := renderCounter(t, viewmodel.Counter{Name: "P1", Inverted: true})
	if !strings.Contains(html, "counter--inverted") {
		t.Error("inverted class missing")
	}
}
