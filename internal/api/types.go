package api

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// FlexString is a string field the API sometimes sends as a number
// (ids, room numbers).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// User is an account as returned by the API.
type User struct {
	ID        FlexString `json:"id,omitempty"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstname"`
	LastName  string     `json:"lastname"`
	Role      string     `json:"role"`
	CreatedAt string     `json:"createdAt,omitempty"`
}

// FullName returns "First Last", trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Booking is a reservation as returned by the admin endpoints.
type Booking struct {
	ID          FlexString `json:"id"`
	BookingID   FlexString `json:"bookingId"`
	GuestName   string     `json:"guestName"`
	GuestEmail  string     `json:"guestEmail"`
	Phone       string     `json:"phone,omitempty"`
	RoomNumber  FlexString `json:"roomNumber"`
	RoomType    string     `json:"roomType"`
	People      int        `json:"people,omitempty"`
	CheckIn     string     `json:"checkIn"`
	CheckOut    string     `json:"checkOut"`
	TotalAmount float64    `json:"totalAmount"`
	Status      string     `json:"status"`
	CreatedAt   string     `json:"createdAt,omitempty"`
}

// Reference returns the human facing booking number, falling back to the id.
func (b Booking) Reference() string {
	if b.BookingID != "" {
		return string(b.BookingID)
	}
	return string(b.ID)
}

// BookingList is one page of bookings.
type BookingList struct {
	Bookings   []Booking `json:"bookings"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// normalize applies the defaults the API omits.
func (l *BookingList) normalize() {
	if l.Bookings == nil {
		l.Bookings = []Booking{}
	}
	if l.Page < 1 {
		l.Page = 1
	}
	if l.PageSize < 1 {
		l.PageSize = 10
	}
	if l.TotalPages < 1 {
		l.TotalPages = 1
	}
	if l.Total < 0 {
		l.Total = 0
	}
}

// Room is a hotel room.
type Room struct {
	ID       FlexString `json:"id"`
	Number   FlexString `json:"number"`
	Type     string     `json:"type"`
	Floor    int        `json:"floor"`
	Capacity int        `json:"capacity"`
	Price    float64    `json:"price"`
	Status   string     `json:"status"`
}

// DashboardStats are the headline figures on the admin dashboard.
type DashboardStats struct {
	TotalBookings  int     `json:"totalBookings"`
	ActiveGuests   int     `json:"activeGuests"`
	AvailableRooms int     `json:"availableRooms"`
	TotalRevenue   float64 `json:"totalRevenue"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	OccupancyRate  float64 `json:"occupancyRate"`
	BookingTrend   float64 `json:"bookingTrend"`
}

// RevenuePoint is one period of the revenue series.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// OccupancyPoint is the occupancy rate for one room type.
type OccupancyPoint struct {
	RoomType string  `json:"roomType"`
	Rate     float64 `json:"rate"`
}

// BookingQuery holds the filters of the admin bookings list.
type BookingQuery struct {
	Status    string
	RoomType  string
	StartDate string
	EndDate   string
	Search    string
	Page      int
	Limit     int
	Sort      string
	Order     string
}

// Values encodes the query. Empty and "all" filters are omitted.
func (q BookingQuery) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" && value != "all" {
			v[key] = []string{value}
		}
	}
	set("status", q.Status)
	set("roomType", q.RoomType)
	set("startDate", q.StartDate)
	set("endDate", q.EndDate)
	set("search", q.Search)
	if q.Page > 0 {
		v["page"] = []string{strconv.Itoa(q.Page)}
	}
	if q.Limit > 0 {
		v["limit"] = []string{strconv.Itoa(q.Limit)}
	}
	set("sort", q.Sort)
	set("order", q.Order)
	return v
}

// message is the envelope of mutating endpoints.
type message struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}
