package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/table"
	"github.com/vangoframework/hotelier/internal/templates/components"
	"github.com/vangoframework/hotelier/internal/templates/pages"
)

// AdminBookings lists bookings with the API doing the paging. The table
// engine owns sort, page and search state; filters ride along as extra
// query parameters.
func (h *Handlers) AdminBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filters := pages.ParseBookingFilters(r.URL.Query())

	// A page past the end, e.g. after filtering, is clamped by the engine
	// once the total is known.
	clamped := false
	tbl := table.NewWithColumns(bookingColumns,
		table.WithServerPaging(),
		table.WithQuery(h.tableQuery(r, tableBookings)),
		table.WithSearchable(),
		table.WithOnPageChange(func(int) { clamped = true }),
	)
	q := tbl.Query()

	apiQuery := api.BookingQuery{
		Status:    filters.Status,
		RoomType:  filters.RoomType,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Search:    q.Search,
		Page:      q.Page,
		Limit:     q.PageSize,
	}
	if q.Sort.IsSorted() {
		apiQuery.Sort = bookingSortFields[q.Sort.ColumnKey]
		apiQuery.Order = q.Sort.Direction.String()
	}

	var errMsg string
	token := tbl.BeginRefresh()
	list, err := h.client(r).ListBookings(ctx, apiQuery)
	switch {
	case err == nil:
		tbl.Deliver(token, bookingRows(list.Bookings), list.Total)
	case api.IsUnauthorized(err):
		h.apiFailure(w, r, "bookings", err)
		return
	default:
		h.logger.Error("failed to list bookings", "error", err)
		tbl.Abandon(token)
		errMsg = "Failed to load bookings. Please try again."
	}

	// Follow a clamped page so the URL and the rows agree.
	if clamped && r.URL.Query().Has(table.ParamPage) {
		target := tbl.Query()
		http.Redirect(w, r, "/admin/bookings?"+target.Encode(filters.Values()), http.StatusSeeOther)
		return
	}
	h.tables.ObserveTable(tableBookings, "server")

	dt := components.DataTable(components.DataTableProps{
		ID:           tableBookings,
		View:         tbl.View(),
		Query:        tbl.Query(),
		BasePath:     "/admin/bookings",
		Extra:        filters.Values(),
		RowHref:      func(row table.RenderedRow) string { return bookingHref(row.ID) },
		EmptyMessage: "No bookings match these filters",
	})
	data := pages.BookingsData{Filters: filters, Query: tbl.Query(), Table: dt, Error: errMsg}
	pages.Bookings(h.page(r, ""), data).Render(ctx, w)
}

// BookingDetail shows one booking.
func (h *Handlers) BookingDetail(w http.ResponseWriter, r *http.Request) {
	booking, err := h.client(r).GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.apiFailure(w, r, "booking", err)
		return
	}

	session := middleware.GetSession(r.Context())
	data := pages.BookingDetailData{
		Booking:   *booking,
		CanDelete: session.Role.AtLeast(auth.RoleAdmin),
	}
	pages.BookingDetail(h.page(r, ""), data).Render(r.Context(), w)
}

// UpdateBookingStatus moves a booking to the submitted status.
func (h *Handlers) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status, err := domain.ParseBookingStatus(r.FormValue("status"))
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	back := bookingHref(id)
	if err := h.client(r).UpdateBookingStatus(r.Context(), id, status); err != nil {
		if api.IsUnauthorized(err) || api.IsNotFound(err) {
			h.apiFailure(w, r, "booking", err)
			return
		}
		h.logger.Error("failed to update booking status", "booking", id, "error", err)
		http.Redirect(w, r, back+"?flash=update_failed", http.StatusSeeOther)
		return
	}

	h.logger.Info("booking status updated", "booking", id, "status", status)
	http.Redirect(w, r, back+"?flash=status_updated", http.StatusSeeOther)
}

// DeleteBooking removes a booking. Administrators only.
func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.client(r).DeleteBooking(r.Context(), id); err != nil {
		if api.IsUnauthorized(err) || api.IsNotFound(err) {
			h.apiFailure(w, r, "booking", err)
			return
		}
		h.logger.Error("failed to delete booking", "booking", id, "error", err)
		http.Redirect(w, r, bookingHref(id)+"?flash=update_failed", http.StatusSeeOther)
		return
	}

	h.logger.Info("booking deleted", "booking", id)
	http.Redirect(w, r, "/admin/bookings?flash=deleted", http.StatusSeeOther)
}
