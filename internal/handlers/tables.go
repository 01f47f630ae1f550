package handlers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/table"
	"github.com/vangoframework/hotelier/internal/templates"
	"github.com/vangoframework/hotelier/internal/templates/components"
	"github.com/vangoframework/hotelier/internal/templates/pages"
)

// Table ids, used for saved views and metrics.
const (
	tableBookings  = "bookings"
	tableRecent    = "recent_bookings"
	tableRevenue   = "revenue"
	tableOccupancy = "occupancy"
	tableRooms     = "rooms"
	tableUsers     = "users"
)

func bookingHref(id string) string {
	return "/admin/bookings/" + url.PathEscape(id)
}

func bookingRow(b api.Booking) table.Row {
	return table.NewRow(string(b.ID), map[string]any{
		"bookingId":  b.Reference(),
		"guestName":  b.GuestName,
		"guestEmail": b.GuestEmail,
		// guest is what the search box matches for the guest column.
		"guest":      strings.TrimSpace(b.GuestName + " " + b.GuestEmail),
		"room":       string(b.RoomNumber),
		"roomType":   b.RoomType,
		"checkIn":    b.CheckIn,
		"checkOut":   b.CheckOut,
		"amount":     b.TotalAmount,
		"status":     b.Status,
	})
}

func bookingRows(bs []api.Booking) []table.Row {
	rows := make([]table.Row, len(bs))
	for i, b := range bs {
		rows[i] = bookingRow(b)
	}
	return rows
}

func renderMoney(field string) func(table.Row) any {
	return func(r table.Row) any {
		v, ok := r.Get(field)
		if !ok {
			return nil
		}
		amount, _ := v.(float64)
		return pages.FormatMoney(amount)
	}
}

func renderStatus(r table.Row) any {
	s := r.String("status")
	if s == "" {
		return nil
	}
	return components.StatusBadge(domain.BookingStatus(s))
}

// twoLine renders a primary value with a muted second line.
func twoLine(primary, secondary string) templ.Component {
	return templates.Func(func(_ context.Context, w *templates.Writer) {
		w.Element("div", primary)
		if secondary != "" {
			w.Element("div", secondary, "class", "muted")
		}
	})
}

// bookingColumns is the admin bookings list.
var bookingColumns = table.MustDefineColumns(
	table.Column{Key: "bookingId", Header: "Booking ID", Sortable: true, Render: func(r table.Row) any {
		if ref := r.String("bookingId"); ref != "" {
			return "#" + ref
		}
		return nil
	}},
	table.Column{Key: "guest", Header: "Guest", Sortable: true, SortKey: "guestName", Render: func(r table.Row) any {
		return twoLine(r.String("guestName"), r.String("guestEmail"))
	}},
	table.Column{Key: "room", Header: "Room", Sortable: true, Render: func(r table.Row) any {
		return twoLine(r.String("room"), domain.RoomType(r.String("roomType")).Label())
	}},
	table.Column{Key: "dates", Header: "Dates", Sortable: true, Virtual: true,
		SortValue: func(r table.Row) any { return r.String("checkIn") },
		Render: func(r table.Row) any {
			in, out := r.String("checkIn"), r.String("checkOut")
			if in == "" {
				return nil
			}
			if out == "" {
				return pages.FormatDate(in)
			}
			return pages.FormatDate(in) + " to " + pages.FormatDate(out)
		}},
	table.Column{Key: "amount", Header: "Amount", Sortable: true, Render: renderMoney("amount")},
	table.Column{Key: "status", Header: "Status", Sortable: true, Render: renderStatus},
	table.Column{Key: "actions", Header: "Actions", Virtual: true, Render: func(r table.Row) any {
		return templates.Func(func(_ context.Context, w *templates.Writer) {
			w.Element("a", "View", "href", bookingHref(r.ID))
		})
	}},
)

// bookingSortFields maps booking columns to the API's sort fields.
var bookingSortFields = map[string]string{
	"bookingId": "bookingId",
	"guest":     "guestName",
	"room":      "roomNumber",
	"dates":     "checkIn",
	"amount":    "totalAmount",
	"status":    "status",
}

// recentColumns is the dashboard's recent bookings table.
var recentColumns = table.MustDefineColumns(
	table.Column{Key: "bookingId", Header: "Booking ID", Sortable: true},
	table.Column{Key: "guest", Header: "Guest", Sortable: true, SortKey: "guestName", Render: func(r table.Row) any {
		return r.String("guestName")
	}},
	table.Column{Key: "roomType", Header: "Room type", Sortable: true, Render: func(r table.Row) any {
		return domain.RoomType(r.String("roomType")).Label()
	}},
	table.Column{Key: "checkIn", Header: "Check-in", Sortable: true, Render: func(r table.Row) any {
		return pages.FormatDate(r.String("checkIn"))
	}},
	table.Column{Key: "status", Header: "Status", Sortable: true, Render: renderStatus},
	table.Column{Key: "amount", Header: "Amount", Sortable: true, Render: renderMoney("amount")},
)

func revenueRows(points []api.RevenuePoint) []table.Row {
	rows := make([]table.Row, len(points))
	for i, p := range points {
		rows[i] = table.NewRow(p.Period, map[string]any{"period": p.Period, "revenue": p.Revenue})
	}
	return rows
}

// The revenue and occupancy series share the dashboard URL with the recent
// bookings table, so only the latter binds sort parameters.
var revenueColumns = table.MustDefineColumns(
	table.Column{Key: "period", Header: "Period"},
	table.Column{Key: "revenue", Header: "Revenue", Render: renderMoney("revenue")},
)

func occupancyRows(points []api.OccupancyPoint) []table.Row {
	rows := make([]table.Row, len(points))
	for i, p := range points {
		rows[i] = table.NewRow(p.RoomType, map[string]any{"roomType": p.RoomType, "rate": p.Rate})
	}
	return rows
}

var occupancyColumns = table.MustDefineColumns(
	table.Column{Key: "roomType", Header: "Room type", Render: func(r table.Row) any {
		return domain.RoomType(r.String("roomType")).Label()
	}},
	table.Column{Key: "rate", Header: "Occupancy", Render: func(r table.Row) any {
		v, ok := r.Get("rate")
		if !ok {
			return nil
		}
		rate, _ := v.(float64)
		return fmt.Sprintf("%.1f%%", rate)
	}},
)

func roomRows(rooms []api.Room) []table.Row {
	rows := make([]table.Row, len(rooms))
	for i, rm := range rooms {
		rows[i] = table.NewRow(string(rm.ID), map[string]any{
			"number":   string(rm.Number),
			"type":     rm.Type,
			"floor":    rm.Floor,
			"capacity": rm.Capacity,
			"price":    rm.Price,
			"status":   rm.Status,
		})
	}
	return rows
}

// roomColumns builds the rooms table. Status forms need the request's
// CSRF field, so the set is built per request.
func roomColumns(p templates.Page) *table.ColumnSet {
	return table.MustDefineColumns(
		table.Column{Key: "number", Header: "Room", Sortable: true},
		table.Column{Key: "type", Header: "Type", Sortable: true, Render: func(r table.Row) any {
			return domain.RoomType(r.String("type")).Label()
		}},
		table.Column{Key: "floor", Header: "Floor", Sortable: true},
		table.Column{Key: "capacity", Header: "Capacity", Sortable: true},
		table.Column{Key: "price", Header: "Price / night", Sortable: true, Render: renderMoney("price")},
		table.Column{Key: "status", Header: "Status", Sortable: true, Render: func(r table.Row) any {
			return components.RoomStatusBadge(domain.RoomStatus(r.String("status")))
		}},
		table.Column{Key: "actions", Header: "Change status", Virtual: true, Render: func(r table.Row) any {
			return roomStatusForm(p, r)
		}},
	)
}

func roomStatusForm(p templates.Page, r table.Row) templ.Component {
	return templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Open("form", "method", "post", "action", "/admin/rooms/"+url.PathEscape(r.ID)+"/status", "class", "inline")
		w.Render(ctx, p.CSRFField())
		w.Open("select", "name", "status", "aria-label", "Room status")
		for _, st := range domain.RoomStatuses {
			if string(st) == r.String("status") {
				w.Open("option", "value", string(st), "selected", "selected")
			} else {
				w.Open("option", "value", string(st))
			}
			w.Text(st.Label())
			w.Close("option")
		}
		w.Close("select")
		w.Raw(`<button type="submit">Save</button>`)
		w.Close("form")
	})
}

func userRows(users []api.User) []table.Row {
	rows := make([]table.Row, len(users))
	for i, u := range users {
		id := string(u.ID)
		if id == "" {
			id = u.Username
		}
		rows[i] = table.NewRow(id, map[string]any{
			"username":  u.Username,
			"name":      u.FullName(),
			"email":     u.Email,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		})
	}
	return rows
}

// assignableRoles lists the roles actor may hand out.
func assignableRoles(actor auth.Role) []auth.Role {
	if actor.AtLeast(auth.RoleSuperAdmin) {
		return []auth.Role{auth.RoleGuest, auth.RoleStaff, auth.RoleAdmin, auth.RoleSuperAdmin}
	}
	return []auth.Role{auth.RoleGuest, auth.RoleStaff}
}

// userColumns builds the users table. Administrators get a role form per row.
func userColumns(p templates.Page) *table.ColumnSet {
	cols := []table.Column{
		{Key: "username", Header: "Username", Sortable: true},
		{Key: "name", Header: "Name", Sortable: true},
		{Key: "email", Header: "Email", Sortable: true},
		{Key: "role", Header: "Role", Sortable: true, Render: func(r table.Row) any {
			role, err := auth.ParseRole(r.String("role"))
			if err != nil {
				return r.String("role")
			}
			return role.Label()
		}},
		{Key: "createdAt", Header: "Joined", Sortable: true, Render: func(r table.Row) any {
			return pages.FormatDate(r.String("createdAt"))
		}},
	}
	if p.User != nil && p.User.Role.AtLeast(auth.RoleAdmin) {
		roles := assignableRoles(p.User.Role)
		cols = append(cols, table.Column{Key: "actions", Header: "Change role", Virtual: true, Render: func(r table.Row) any {
			current, err := auth.ParseRole(r.String("role"))
			if err != nil || !canAssign(p.User.Role, current) {
				return nil
			}
			return userRoleForm(p, r, roles)
		}})
	}
	return table.MustDefineColumns(cols...)
}

// canAssign reports whether actor may change a user who currently holds role.
func canAssign(actor, role auth.Role) bool {
	for _, r := range assignableRoles(actor) {
		if r == role {
			return true
		}
	}
	return false
}

func userRoleForm(p templates.Page, r table.Row, roles []auth.Role) templ.Component {
	return templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Open("form", "method", "post", "action", "/admin/users/"+url.PathEscape(r.ID)+"/role", "class", "inline")
		w.Render(ctx, p.CSRFField())
		w.Open("select", "name", "role", "aria-label", "Role")
		for _, role := range roles {
			if string(role) == r.String("role") {
				w.Open("option", "value", string(role), "selected", "selected")
			} else {
				w.Open("option", "value", string(role))
			}
			w.Text(role.Label())
			w.Close("option")
		}
		w.Close("select")
		w.Raw(`<button type="submit">Save</button>`)
		w.Close("form")
	})
}
