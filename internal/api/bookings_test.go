package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/domain"
)

func TestBookingQuery_Values(t *testing.T) {
	q := api.BookingQuery{
		Status:    "all",
		RoomType:  "suite",
		StartDate: "2024-06-01",
		Search:    "john",
		Page:      2,
		Limit:     25,
		Sort:      "checkIn",
		Order:     "desc",
	}

	assert.Equal(t, url.Values{
		"roomType":  {"suite"},
		"startDate": {"2024-06-01"},
		"search":    {"john"},
		"page":      {"2"},
		"limit":     {"25"},
		"sort":      {"checkIn"},
		"order":     {"desc"},
	}, q.Values())

	assert.Empty(t, api.BookingQuery{}.Values())
}

func TestClient_ListBookings(t *testing.T) {
	var query url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/bookings", r.URL.Path)
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, map[string]any{
			"bookings": []map[string]any{
				{"id": 1, "bookingId": "BK-001", "guestName": "John Smith", "roomNumber": 101, "totalAmount": 300, "status": "confirmed"},
				{"id": "2", "guestName": "Mary Jones", "roomNumber": "102A", "totalAmount": 120.5, "status": "pending"},
			},
			"total":      42,
			"page":       3,
			"pageSize":   2,
			"totalPages": 21,
		})
	})

	list, err := c.ListBookings(context.Background(), api.BookingQuery{Status: "confirmed", Page: 3, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", query.Get("status"))
	assert.Equal(t, "3", query.Get("page"))
	assert.Equal(t, "2", query.Get("limit"))

	require.Len(t, list.Bookings, 2)
	assert.Equal(t, 42, list.Total)
	assert.Equal(t, 21, list.TotalPages)
	assert.Equal(t, "BK-001", list.Bookings[0].Reference())
	assert.Equal(t, "2", list.Bookings[1].Reference())
	assert.Equal(t, api.FlexString("101"), list.Bookings[0].RoomNumber)
	assert.Equal(t, 120.5, list.Bookings[1].TotalAmount)
}

func TestClient_ListBookingsDefaults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	list, err := c.ListBookings(context.Background(), api.BookingQuery{})
	require.NoError(t, err)

	assert.NotNil(t, list.Bookings)
	assert.Empty(t, list.Bookings)
	assert.Equal(t, 0, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.PageSize)
	assert.Equal(t, 1, list.TotalPages)
}

func TestClient_RecentBookings(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"array", []map[string]any{{"id": 1}, {"id": 2}}},
		{"list", map[string]any{"bookings": []map[string]any{{"id": 1}, {"id": 2}}, "total": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "5", r.URL.Query().Get("limit"))
				writeJSON(w, http.StatusOK, tt.body)
			})

			got, err := c.RecentBookings(context.Background(), 5)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, api.FlexString("2"), got[1].ID)
		})
	}
}

func TestClient_GetBooking(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/bookings/17" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Booking not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 17, "guestName": "John Smith"})
	})

	b, err := c.GetBooking(context.Background(), "17")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", b.GuestName)

	_, err = c.GetBooking(context.Background(), "99")
	assert.True(t, api.IsNotFound(err))
}

func TestClient_CreateBooking(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hotel_booking", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Booking successful!"})
	})

	msg, err := c.CreateBooking(context.Background(), domain.BookingRequest{
		FirstName: "John", LastName: "Smith", Email: "john@example.com", Phone: "5551234567",
		RoomType: domain.RoomSuite, People: 2, CheckIn: "2024-06-20", Duration: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Booking successful!", msg)
	assert.Equal(t, "suite", got["room_type"])
	assert.Equal(t, float64(2), got["people"])
	assert.Equal(t, "2024-06-20", got["check_in"])
}

func TestClient_UpdateBookingStatus(t *testing.T) {
	var method, path string
	var body map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateBookingStatus(context.Background(), "17", domain.StatusCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/admin/bookings/17/status", path)
	assert.Equal(t, "checked-in", body["status"])
}

func TestClient_DeleteBooking(t *testing.T) {
	var method string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteBooking(context.Background(), "17"))
	assert.Equal(t, http.MethodDelete, method)
}
