package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/templates/pages"
)

// BookingPage renders the booking form, prefilled for signed-in guests.
func (h *Handlers) BookingPage(w http.ResponseWriter, r *http.Request) {
	form := pages.BookingForm{
		Values: domain.BookingRequest{RoomType: domain.RoomStandard, People: 1, Duration: 1},
		Today:  h.now().Format(domain.DateLayout),
	}
	if s := middleware.GetSession(r.Context()); s != nil {
		form.Values.FirstName = s.FirstName
		form.Values.LastName = s.LastName
		form.Values.Email = s.Email
	}
	pages.Booking(h.page(r, ""), form).Render(r.Context(), w)
}

// BookingSubmit validates the booking form and forwards it to the API.
func (h *Handlers) BookingSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.now()

	req := domain.BookingRequest{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Phone:     strings.TrimSpace(r.FormValue("phone")),
		RoomType:  domain.RoomType(r.FormValue("room_type")),
		CheckIn:   r.FormValue("check_in"),
	}
	req.People, _ = strconv.Atoi(r.FormValue("people"))
	req.Duration, _ = strconv.Atoi(r.FormValue("duration"))

	form := pages.BookingForm{Values: req, Today: now.Format(domain.DateLayout)}
	if err := req.Validate(now); err != nil {
		form.Errors = domain.FieldErrors(err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		pages.Booking(h.page(r, ""), form).Render(ctx, w)
		return
	}

	msg, err := h.client(r).CreateBooking(ctx, req)
	if err != nil {
		h.logger.Error("failed to create booking", "email", req.Email, "error", err)
		form.Error = userMessage(err, "We could not place your booking. Please try again.")
		w.WriteHeader(http.StatusBadGateway)
		pages.Booking(h.page(r, ""), form).Render(ctx, w)
		return
	}

	h.logger.Info("booking created", "message", msg, "room_type", req.RoomType, "check_in", req.CheckIn)
	target := "/book?flash=booked"
	if middleware.GetSession(ctx) != nil {
		target = "/dashboard?flash=booked"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
