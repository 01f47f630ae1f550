package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/templates"
	"github.com/vangoframework/hotelier/internal/templates/components"
)

// BookingForm is the state of the guest booking page.
type BookingForm struct {
	Values domain.BookingRequest
	Today  string
	Error  string
	Errors map[string]string
}

func roomTypeOptions() []components.Option {
	out := make([]components.Option, 0, len(domain.RoomTypes))
	for _, rt := range domain.RoomTypes {
		out = append(out, components.Option{Value: string(rt), Label: rt.Label()})
	}
	return out
}

// Booking renders the guest booking form.
func Booking(p templates.Page, f BookingForm) templ.Component {
	p.Title = "Book a room"
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", p.Title)
		if f.Error != "" {
			w.Element("div", f.Error, "class", "flash flash-error", "role", "alert")
		}

		v := f.Values
		w.Open("form", "method", "post", "action", "/book", "class", "booking-form")
		w.Render(ctx, p.CSRFField())
		for _, field := range []components.Field{
			{Name: "first_name", Label: "First name", Value: v.FirstName, Required: true},
			{Name: "last_name", Label: "Last name", Value: v.LastName, Required: true},
			{Name: "email", Label: "Email", Type: "email", Value: v.Email, Required: true},
			{Name: "phone", Label: "Phone", Type: "tel", Value: v.Phone, Required: true},
		} {
			field.Error = f.Errors[field.Name]
			w.Render(ctx, components.Input(field))
		}

		roomType := string(v.RoomType)
		if roomType == "" {
			roomType = string(domain.RoomStandard)
		}
		w.Render(ctx, components.Select("room_type", "Room type", roomType, roomTypeOptions()))
		fieldError(w, f.Errors["room_type"])

		w.Render(ctx, components.Select("people", "Guests", strconv.Itoa(max(v.People, 1)),
			components.IntOptions(1, domain.MaxPeople, "")))
		fieldError(w, f.Errors["people"])

		w.Render(ctx, components.Input(components.Field{
			Name: "check_in", Label: "Check-in", Type: "date", Value: v.CheckIn,
			Min: f.Today, Error: f.Errors["check_in"], Required: true,
		}))
		w.Render(ctx, components.Input(components.Field{
			Name: "duration", Label: "Nights", Type: "number", Value: strconv.Itoa(max(v.Duration, 1)),
			Min: "1", Max: strconv.Itoa(domain.MaxNights), Error: f.Errors["duration"], Required: true,
		}))

		w.Raw(`<button type="submit">Book now</button>`)
		w.Close("form")
	})
	return templates.Layout(p, body)
}

func fieldError(w *templates.Writer, msg string) {
	if msg != "" {
		w.Element("div", msg, "class", "field-error")
	}
}
