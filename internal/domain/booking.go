package domain

import (
	"errors"
	"strings"
)

// ErrUnknownStatus is returned when parsing a status the API does not use.
var ErrUnknownStatus = errors.New("unknown status")

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked-out"
	StatusCancelled  BookingStatus = "cancelled"
)

// BookingStatuses lists every status in display order.
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// ParseBookingStatus parses a status name.
func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range BookingStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", ErrUnknownStatus
}

// Label returns the display label, e.g. "Checked In".
func (s BookingStatus) Label() string {
	if s == "" {
		return ""
	}
	str := strings.ReplaceAll(string(s), "-", " ")
	return titleWords(str)
}

// Color returns the badge colour for the status.
func (s BookingStatus) Color() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusConfirmed:
		return "blue"
	case StatusCheckedIn:
		return "green"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// RoomType is a bookable room category.
type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
	RoomFamily   RoomType = "family"
)

// RoomTypes lists every room type in display order.
var RoomTypes = []RoomType{RoomStandard, RoomDeluxe, RoomSuite, RoomFamily}

// Valid reports whether t is a known room type.
func (t RoomType) Valid() bool {
	for _, known := range RoomTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the display label.
func (t RoomType) Label() string {
	return titleWords(string(t))
}

// RoomStatus is the housekeeping state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

var RoomStatuses = []RoomStatus{RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance}

// ParseRoomStatus parses a room status name.
func ParseRoomStatus(s string) (RoomStatus, error) {
	st := RoomStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RoomStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", ErrUnknownStatus
}

func (s RoomStatus) Label() string {
	return titleWords(string(s))
}

func (s RoomStatus) Color() string {
	switch s {
	case RoomAvailable:
		return "green"
	case RoomOccupied:
		return "blue"
	case RoomCleaning:
		return "yellow"
	case RoomMaintenance:
		return "red"
	default:
		return "gray"
	}
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
