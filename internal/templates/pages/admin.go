package pages

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/table"
	"github.com/vangoframework/hotelier/internal/templates"
	"github.com/vangoframework/hotelier/internal/templates/components"
)

// AdminDashboardData feeds the admin dashboard.
type AdminDashboardData struct {
	Heading   string
	Stats     []components.Stat
	Recent    templ.Component
	Revenue   templ.Component
	Occupancy templ.Component
	// Errors lists the sections that failed to load.
	Errors []string
}

// AdminDashboard renders the staff and administrator dashboard.
func AdminDashboard(p templates.Page, d AdminDashboardData) templ.Component {
	p.Title = "Dashboard"
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", d.Heading)
		for _, e := range d.Errors {
			w.Element("div", e, "class", "flash flash-error", "role", "alert")
		}
		if len(d.Stats) > 0 {
			w.Render(ctx, components.StatsCards(d.Stats))
		}

		section(ctx, w, "Recent bookings", d.Recent)
		w.Open("div", "class", "cards")
		section(ctx, w, "Revenue", d.Revenue)
		section(ctx, w, "Occupancy by room type", d.Occupancy)
		w.Close("div")
	})
	return templates.Layout(p, body)
}

func section(ctx context.Context, w *templates.Writer, title string, c templ.Component) {
	if c == nil {
		return
	}
	w.Open("section", "class", "card")
	w.Element("h2", title)
	w.Render(ctx, c)
	w.Close("section")
}

// BookingFilters are the bookings list filters outside the table itself.
type BookingFilters struct {
	Status    string
	RoomType  string
	StartDate string
	EndDate   string
}

// ParseBookingFilters reads the filters from a query string. Unknown
// statuses and room types are treated as "all".
func ParseBookingFilters(v url.Values) BookingFilters {
	f := BookingFilters{
		StartDate: v.Get("startDate"),
		EndDate:   v.Get("endDate"),
	}
	if st, err := domain.ParseBookingStatus(v.Get("status")); err == nil {
		f.Status = string(st)
	}
	if rt := domain.RoomType(v.Get("roomType")); rt.Valid() {
		f.RoomType = string(rt)
	}
	return f
}

// Values encodes the non-empty filters.
func (f BookingFilters) Values() url.Values {
	v := url.Values{}
	for key, val := range map[string]string{
		"status":    f.Status,
		"roomType":  f.RoomType,
		"startDate": f.StartDate,
		"endDate":   f.EndDate,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// BookingsData feeds the bookings list page.
type BookingsData struct {
	Filters BookingFilters
	Query   table.Query
	Table   templ.Component
	Error   string
}

// Bookings renders the bookings list with its filters.
func Bookings(p templates.Page, d BookingsData) templ.Component {
	p.Title = "Bookings"
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", "Bookings")

		w.Open("form", "method", "get", "action", "/admin/bookings", "class", "filters")
		// Changing filters starts over on page 1; size, sort and search stay.
		keep := d.Query.WithPage(1).Values()
		for _, key := range []string{table.ParamPageSize, table.ParamSort, table.ParamDir, table.ParamSearch} {
			if val := keep.Get(key); val != "" {
				w.Open("input", "type", "hidden", "name", key, "value", val)
			}
		}

		statuses := []components.Option{{Value: "", Label: "All statuses"}}
		for _, st := range domain.BookingStatuses {
			statuses = append(statuses, components.Option{Value: string(st), Label: st.Label()})
		}
		w.Render(ctx, components.Select("status", "Status", d.Filters.Status, statuses))

		roomTypes := append([]components.Option{{Value: "", Label: "All room types"}}, roomTypeOptions()...)
		w.Render(ctx, components.Select("roomType", "Room type", d.Filters.RoomType, roomTypes))

		w.Render(ctx, components.Input(components.Field{Name: "startDate", Label: "From", Type: "date", Value: d.Filters.StartDate}))
		w.Render(ctx, components.Input(components.Field{Name: "endDate", Label: "To", Type: "date", Value: d.Filters.EndDate}))
		w.Raw(`<button type="submit">Apply filters</button>`)
		w.Element("a", "Reset", "href", "/admin/bookings?reset=1")
		w.Close("form")

		if d.Error != "" {
			w.Element("div", d.Error, "class", "flash flash-error", "role", "alert")
		}
		w.Render(ctx, d.Table)
	})
	return templates.Layout(p, body)
}

// BookingDetailData feeds the booking detail page.
type BookingDetailData struct {
	Booking   api.Booking
	CanDelete bool
}

// BookingDetail renders one booking with its status controls.
func BookingDetail(p templates.Page, d BookingDetailData) templ.Component {
	b := d.Booking
	p.Title = "Booking #" + b.Reference()
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("a", "← All bookings", "href", "/admin/bookings")
		w.Element("h1", p.Title)

		status := domain.BookingStatus(b.Status)
		w.Open("dl", "class", "card")
		for _, item := range []struct{ term, value string }{
			{"Guest", b.GuestName},
			{"Email", b.GuestEmail},
			{"Phone", b.Phone},
			{"Room", string(b.RoomNumber)},
			{"Room type", domain.RoomType(b.RoomType).Label()},
			{"Guests", intText(b.People)},
			{"Check-in", FormatDate(b.CheckIn)},
			{"Check-out", FormatDate(b.CheckOut)},
			{"Total", FormatMoney(b.TotalAmount)},
		} {
			w.Element("dt", item.term)
			if item.value == "" {
				w.Element("dd", table.EmptyValue)
			} else {
				w.Element("dd", item.value)
			}
		}
		w.Element("dt", "Status")
		w.Open("dd")
		w.Render(ctx, components.StatusBadge(status))
		w.Close("dd")
		w.Close("dl")

		id := url.PathEscape(string(b.ID))
		w.Open("form", "method", "post", "action", "/admin/bookings/"+id+"/status")
		w.Render(ctx, p.CSRFField())
		options := make([]components.Option, 0, len(domain.BookingStatuses))
		for _, st := range domain.BookingStatuses {
			options = append(options, components.Option{Value: string(st), Label: st.Label()})
		}
		w.Render(ctx, components.Select("status", "Change status", string(status), options))
		w.Raw(`<button type="submit">Update status</button>`)
		w.Close("form")

		if d.CanDelete {
			w.Open("form", "method", "post", "action", "/admin/bookings/"+id+"/delete",
				"onsubmit", "return confirm('Delete this booking?')")
			w.Render(ctx, p.CSRFField())
			w.Raw(`<button type="submit" class="danger">Delete booking</button>`)
			w.Close("form")
		}
	})
	return templates.Layout(p, body)
}

// TablePage renders a titled page around a single data table.
func TablePage(p templates.Page, title, errMsg string, tbl templ.Component) templ.Component {
	p.Title = title
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", title)
		if errMsg != "" {
			w.Element("div", errMsg, "class", "flash flash-error", "role", "alert")
		}
		w.Render(ctx, tbl)
	})
	return templates.Layout(p, body)
}

func intText(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprint(n)
}
