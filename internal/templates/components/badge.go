package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/templates"
)

// Badge renders a coloured pill.
func Badge(label, color string) templ.Component {
	return templates.Func(func(_ context.Context, w *templates.Writer) {
		w.Element("span", label, "class", templ.Classes("badge", "badge-"+color).String())
	})
}

// StatusBadge renders a booking status.
func StatusBadge(status domain.BookingStatus) templ.Component {
	return Badge(status.Label(), status.Color())
}

// RoomStatusBadge renders a room status.
func RoomStatusBadge(status domain.RoomStatus) templ.Component {
	return Badge(status.Label(), status.Color())
}

// Stat is one headline figure.
type Stat struct {
	Name  string
	Value string
	// Change is a signed percentage; zero hides the trend.
	Change float64
}

// StatsCards renders a grid of headline figures.
func StatsCards(stats []Stat) templ.Component {
	return templates.Func(func(_ context.Context, w *templates.Writer) {
		w.Open("div", "class", "cards")
		for _, s := range stats {
			w.Open("div", "class", "card")
			w.Element("div", s.Name, "class", "card-name")
			w.Element("div", s.Value, "class", "card-value")
			if s.Change != 0 {
				classes := templ.Classes("card-trend", templ.KV("trend-up", s.Change > 0), templ.KV("trend-down", s.Change < 0))
				w.Open("div", "class", classes.String())
				w.Textf("%+.1f%%", s.Change)
				w.Close("div")
			}
			w.Close("div")
		}
		w.Close("div")
	})
}
