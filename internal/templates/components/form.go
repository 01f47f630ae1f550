package components

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/templates"
)

// Field is a labelled form input.
type Field struct {
	Name         string
	Label        string
	Type         string
	Value        string
	Error        string
	Required     bool
	Min, Max     string
	Autocomplete string
}

// Input renders a labelled input with its validation error.
func Input(f Field) templ.Component {
	return templates.Func(func(_ context.Context, w *templates.Writer) {
		typ := f.Type
		if typ == "" {
			typ = "text"
		}
		w.Open("div", "class", "field")
		w.Element("label", f.Label, "for", f.Name)
		w.Raw("<input")
		w.Attr("id", f.Name)
		w.Attr("name", f.Name)
		w.Attr("type", typ)
		if typ != "password" {
			w.Attr("value", f.Value)
		}
		if f.Min != "" {
			w.Attr("min", f.Min)
		}
		if f.Max != "" {
			w.Attr("max", f.Max)
		}
		if f.Autocomplete != "" {
			w.Attr("autocomplete", f.Autocomplete)
		}
		w.BoolAttr("required", f.Required)
		if f.Error != "" {
			w.Attr("aria-invalid", "true")
		}
		w.Raw(">")
		if f.Error != "" {
			w.Element("div", f.Label+" "+f.Error, "class", "field-error")
		}
		w.Close("div")
	})
}

// Option is one choice of a Select.
type Option struct {
	Value string
	Label string
}

// Select renders a labelled select box.
func Select(name, label, selected string, options []Option) templ.Component {
	return templates.Func(func(_ context.Context, w *templates.Writer) {
		w.Open("div", "class", "field")
		w.Element("label", label, "for", name)
		w.Open("select", "id", name, "name", name)
		for _, o := range options {
			w.Raw("<option")
			w.Attr("value", o.Value)
			w.BoolAttr("selected", o.Value == selected)
			w.Raw(">")
			w.Text(o.Label)
			w.Close("option")
		}
		w.Close("select")
		w.Close("div")
	})
}

// IntOptions returns options for the integers lo..hi.
func IntOptions(lo, hi int, suffix string) []Option {
	out := make([]Option, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		v := strconv.Itoa(n)
		out = append(out, Option{Value: v, Label: v + suffix})
	}
	return out
}
