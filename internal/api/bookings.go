package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vangoframework/hotelier/internal/domain"
)

// ListBookings returns one page of bookings matching q.
func (c *Client) ListBookings(ctx context.Context, q BookingQuery) (*BookingList, error) {
	var list BookingList
	if err := c.do(ctx, "list_bookings", http.MethodGet, "/admin/bookings", q.Values(), nil, &list); err != nil {
		return nil, err
	}
	list.normalize()
	return &list, nil
}

// RecentBookings returns the newest bookings for the dashboard. The API
// answers this either as a plain array or as a BookingList.
func (c *Client) RecentBookings(ctx context.Context, limit int) ([]Booking, error) {
	var raw json.RawMessage
	q := url.Values{"limit": {fmt.Sprint(limit)}}
	if err := c.do(ctx, "recent_bookings", http.MethodGet, "/admin/bookings", q, nil, &raw); err != nil {
		return nil, err
	}

	var bookings []Booking
	if err := json.Unmarshal(raw, &bookings); err == nil {
		return bookings, nil
	}
	var list BookingList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode recent_bookings response: %w", err)
	}
	list.normalize()
	return list.Bookings, nil
}

// GetBooking returns a single booking.
func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := c.do(ctx, "get_booking", http.MethodGet, "/admin/bookings/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking submits the guest booking form and returns the API message.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (string, error) {
	var out message
	if err := c.do(ctx, "create_booking", http.MethodPost, "/hotel_booking", nil, req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UpdateBookingStatus moves a booking to status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, "update_booking_status", http.MethodPut, "/admin/bookings/"+url.PathEscape(id)+"/status", nil, body, nil)
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, "delete_booking", http.MethodDelete, "/admin/bookings/"+url.PathEscape(id), nil, nil, nil)
}
