package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/table"
	"github.com/vangoframework/hotelier/internal/templates/components"
	"github.com/vangoframework/hotelier/internal/templates/pages"
)

const recentBookingsLimit = 5

func dashboardHeading(role auth.Role) string {
	switch role {
	case auth.RoleSuperAdmin:
		return "Super Admin Dashboard"
	case auth.RoleAdmin:
		return "Admin Dashboard"
	default:
		return "Staff Dashboard"
	}
}

// AdminDashboard renders headline stats, recent bookings and the revenue and
// occupancy series. The sections load in parallel; a failed section is
// reported on the page without hiding the others.
func (h *Handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client := h.client(r)
	session := middleware.GetSession(ctx)

	var (
		stats     *api.DashboardStats
		recent    []api.Booking
		revenue   []api.RevenuePoint
		occupancy []api.OccupancyPoint

		mu       sync.Mutex
		failures []string
	)
	// fail records a section error. Only an unauthorised token aborts the page.
	fail := func(section string, err error) error {
		if api.StatusCode(err) == http.StatusUnauthorized {
			return err
		}
		h.logger.Error("dashboard section failed", "section", section, "error", err)
		mu.Lock()
		failures = append(failures, fmt.Sprintf("Could not load %s.", section))
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if stats, err = client.DashboardStats(gctx); err != nil {
			return fail("statistics", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if recent, err = client.RecentBookings(gctx, recentBookingsLimit); err != nil {
			return fail("recent bookings", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if revenue, err = client.RevenueStats(gctx, "monthly"); err != nil {
			return fail("revenue", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if occupancy, err = client.OccupancyRates(gctx); err != nil {
			return fail("occupancy", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		h.apiFailure(w, r, "dashboard", err)
		return
	}

	data := pages.AdminDashboardData{
		Heading: dashboardHeading(session.Role),
		Errors:  failures,
	}
	if stats != nil {
		data.Stats = []components.Stat{
			{Name: "Total bookings", Value: fmt.Sprint(stats.TotalBookings), Change: stats.BookingTrend},
			{Name: "Active guests", Value: fmt.Sprint(stats.ActiveGuests)},
			{Name: "Available rooms", Value: fmt.Sprint(stats.AvailableRooms)},
			{Name: "Revenue this month", Value: pages.FormatMoney(stats.MonthlyRevenue)},
			{Name: "Occupancy", Value: fmt.Sprintf("%.0f%%", stats.OccupancyRate)},
		}
	}
	if recent != nil {
		q := table.ParseQuery(r.URL.Query(), table.Query{})
		data.Recent = h.staticTable(tableRecent, recentColumns, bookingRows(recent), "/admin", q,
			"No bookings yet", func(row table.RenderedRow) string { return bookingHref(row.ID) })
	}
	if revenue != nil {
		data.Revenue = h.staticTable(tableRevenue, revenueColumns, revenueRows(revenue), "/admin", table.Query{},
			"No revenue recorded", nil)
	}
	if occupancy != nil {
		data.Occupancy = h.staticTable(tableOccupancy, occupancyColumns, occupancyRows(occupancy), "/admin", table.Query{},
			"No rooms", nil)
	}

	pages.AdminDashboard(h.page(r, ""), data).Render(ctx, w)
}

// staticTable renders rows as a single unpaginated table.
func (h *Handlers) staticTable(
	id string,
	cols *table.ColumnSet,
	rows []table.Row,
	basePath string,
	q table.Query,
	empty string,
	href func(table.RenderedRow) string,
) templ.Component {
	tbl := table.NewWithColumns(cols, table.WithoutPagination(), table.WithSort(q.Sort))
	tbl.SetRows(rows)
	h.tables.ObserveTable(id, "static")

	return components.DataTable(components.DataTableProps{
		ID:           id,
		View:         tbl.View(),
		Query:        tbl.Query(),
		BasePath:     basePath,
		RowHref:      href,
		EmptyMessage: empty,
	})
}

// clientTable filters, sorts and pages rows in memory.
func (h *Handlers) clientTable(
	r *http.Request,
	id string,
	cols *table.ColumnSet,
	rows []table.Row,
	basePath string,
	empty string,
) templ.Component {
	tbl := table.NewWithColumns(cols, table.WithQuery(h.tableQuery(r, id)), table.WithSearchable())
	tbl.SetRows(rows)
	h.tables.ObserveTable(id, "client")

	return components.DataTable(components.DataTableProps{
		ID:           id,
		View:         tbl.View(),
		Query:        tbl.Query(),
		BasePath:     basePath,
		EmptyMessage: empty,
	})
}

// Rooms lists the hotel's rooms with a status form per room.
func (h *Handlers) Rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.client(r).Rooms(r.Context())
	if err != nil {
		h.apiFailure(w, r, "rooms", err)
		return
	}

	p := h.page(r, "")
	tbl := h.clientTable(r, tableRooms, roomColumns(p), roomRows(rooms), "/admin/rooms", "No rooms found")
	pages.TablePage(p, "Rooms", "", tbl).Render(r.Context(), w)
}

// UpdateRoomStatus changes a room's housekeeping status.
func (h *Handlers) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status, err := domain.ParseRoomStatus(r.FormValue("status"))
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	if err := h.client(r).UpdateRoomStatus(r.Context(), id, status); err != nil {
		if api.IsUnauthorized(err) {
			h.apiFailure(w, r, "room", err)
			return
		}
		h.logger.Error("failed to update room status", "room", id, "error", err)
		http.Redirect(w, r, "/admin/rooms?flash=update_failed", http.StatusSeeOther)
		return
	}

	h.logger.Info("room status updated", "room", id, "status", status)
	http.Redirect(w, r, "/admin/rooms?flash=status_updated", http.StatusSeeOther)
}

// Users lists accounts. Administrators can change roles.
func (h *Handlers) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.client(r).Users(r.Context())
	if err != nil {
		h.apiFailure(w, r, "users", err)
		return
	}

	p := h.page(r, "")
	tbl := h.clientTable(r, tableUsers, userColumns(p), userRows(users), "/admin/users", "No users found")
	pages.TablePage(p, "Users", "", tbl).Render(r.Context(), w)
}

// UpdateUserRole changes a user's role. Only super administrators may grant
// or revoke administrator roles.
func (h *Handlers) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	id := chi.URLParam(r, "id")

	role, err := auth.ParseRole(r.FormValue("role"))
	if err != nil {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}
	if !canAssign(session.Role, role) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// The target's current role must be one the actor may change too.
	current, err := h.userRole(r, id)
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			http.NotFound(w, r)
			return
		}
		h.apiFailure(w, r, "user", err)
		return
	}
	if !canAssign(session.Role, current) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.client(r).UpdateUserRole(r.Context(), id, string(role)); err != nil {
		if api.IsUnauthorized(err) {
			h.apiFailure(w, r, "user", err)
			return
		}
		h.logger.Error("failed to update user role", "user", id, "error", err)
		http.Redirect(w, r, "/admin/users?flash=update_failed", http.StatusSeeOther)
		return
	}

	h.logger.Info("user role updated", "user", id, "role", role, "by", session.Email)
	http.Redirect(w, r, "/admin/users?flash=role_updated", http.StatusSeeOther)
}

var errUserNotFound = errors.New("user not found")

// userRole looks up the current role of the user with id.
func (h *Handlers) userRole(r *http.Request, id string) (auth.Role, error) {
	users, err := h.client(r).Users(r.Context())
	if err != nil {
		return "", err
	}
	for _, u := range users {
		if string(u.ID) == id {
			// Unknown roles come back as-is and are never assignable.
			if role, err := auth.ParseRole(u.Role); err == nil {
				return role, nil
			}
			return auth.Role(u.Role), nil
		}
	}
	return "", errUserNotFound
}
