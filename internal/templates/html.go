// Package templates holds the HTML building blocks shared by all pages.
// Components are plain templ.Components written against a small writer.
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Writer writes HTML, remembering the first error.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Textf formats and writes escaped text.
func (w *Writer) Textf(format string, args ...any) {
	w.Text(fmt.Sprintf(format, args...))
}

// Int writes an integer.
func (w *Writer) Int(n int) {
	w.Raw(strconv.Itoa(n))
}

// urlAttrs hold URLs; their values are sanitized with templ.URL.
var urlAttrs = map[string]bool{
	"href":       true,
	"action":     true,
	"formaction": true,
	"src":        true,
	"data-href":  true,
}

// Attr writes ` name="value"` with value escaped. URL attributes with an
// unsafe scheme are replaced by templ.FailedSanitizationURL.
func (w *Writer) Attr(name, value string) {
	if urlAttrs[name] {
		value = string(templ.URL(value))
	}
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// BoolAttr writes ` name` when on is true.
func (w *Writer) BoolAttr(name string, on bool) {
	if on {
		w.Raw(" " + name)
	}
}

// Open writes an opening tag with attribute pairs (name, value, ...).
func (w *Writer) Open(tag string, attrs ...string) {
	w.Raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		w.Attr(attrs[i], attrs[i+1])
	}
	w.Raw(">")
}

// Close writes a closing tag.
func (w *Writer) Close(tag string) {
	w.Raw("</" + tag + ">")
}

// Element writes <tag attrs>escaped text</tag>.
func (w *Writer) Element(tag, text string, attrs ...string) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close(tag)
}

// Render renders a nested component.
func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// Func builds a component from a function writing to a Writer.
func Func(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		hw := NewWriter(out)
		fn(ctx, hw)
		return hw.Err()
	})
}

// Text is a component that writes escaped text.
func Text(s string) templ.Component {
	return Func(func(_ context.Context, w *Writer) {
		w.Text(s)
	})
}
