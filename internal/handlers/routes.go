package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/middleware"
)

// Routes mounts the application pages on r. Global middleware (request ids,
// logging, sessions, CSRF) is the caller's concern.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	// Public routes
	r.Get("/", h.Home)
	for _, role := range []auth.Role{auth.RoleGuest, auth.RoleStaff, auth.RoleAdmin, auth.RoleSuperAdmin} {
		r.Get(role.LoginPage(), h.LoginPage(role))
		r.Post(role.LoginPage(), h.LoginSubmit(role))
	}
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.SignupSubmit)
	r.Post("/logout", h.Logout)
	r.Get("/book", h.BookingPage)
	r.Post("/book", h.BookingSubmit)

	// Signed-in routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/dashboard", h.Dashboard)
	})

	// Staff routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleStaff))

		r.Get("/", h.AdminDashboard)
		r.Get("/bookings", h.AdminBookings)
		r.Get("/bookings/{id}", h.BookingDetail)
		r.Post("/bookings/{id}/status", h.UpdateBookingStatus)
		r.Get("/rooms", h.Rooms)
		r.Post("/rooms/{id}/status", h.UpdateRoomStatus)
		r.Get("/users", h.Users)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin))

			r.Post("/bookings/{id}/delete", h.DeleteBooking)
			r.Post("/users/{id}/role", h.UpdateUserRole)
		})
	})
}
