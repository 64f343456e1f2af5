package components

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Writer writes HTML and keeps the first error, so components read top to bottom.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup.
func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes escaped text.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Int writes a decimal number.
func (hw *Writer) Int(n int) {
	hw.Raw(strconv.Itoa(n))
}

// Err returns the first write error.
func (hw *Writer) Err() error {
	return hw.err
}
