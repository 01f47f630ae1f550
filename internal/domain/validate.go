package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation errors
var (
	ErrRequired          = errors.New("is required")
	ErrInvalidEmail      = errors.New("must be a valid email address")
	ErrInvalidPhone      = errors.New("must be a valid phone number")
	ErrInvalidUsername   = errors.New("must be 3-32 characters of letters, numbers, dots, hyphens or underscores")
	ErrPasswordTooShort  = errors.New("must be at least 8 characters")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrInvalidRoomType   = errors.New("must be one of standard, deluxe, suite or family")
	ErrPeopleOutOfRange  = errors.New("must be between 1 and 10")
	ErrCheckInInPast     = errors.New("cannot be in the past")
	ErrInvalidDate       = errors.New("must be a date in YYYY-MM-DD format")
	ErrDurationOutOfBand = errors.New("must be between 1 and 30 nights")
)

const (
	MinPasswordLength = 8
	MaxPeople         = 10
	MaxNights         = 30

	// DateLayout is the date format used by forms and the API.
	DateLayout = "2006-01-02"
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,32}$`)
)

// FieldError ties a validation error to a form field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors flattens an error returned by a Validate method into
// field -> message. Errors that are not field errors are keyed by "".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		var fe *FieldError
		if errors.As(e, &fe) {
			if _, seen := out[fe.Field]; !seen {
				out[fe.Field] = fe.Err.Error()
			}
			continue
		}
		out[""] = e.Error()
	}
	return out
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Err: ErrRequired}
	}
	return nil
}

// BookingRequest is the guest booking form.
type BookingRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	RoomType  RoomType `json:"room_type"`
	People    int      `json:"people"`
	CheckIn   string   `json:"check_in"`
	Duration  int      `json:"duration"`
}

// Validate checks the form against the booking rules as of now.
func (b BookingRequest) Validate(now time.Time) error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"first_name", b.FirstName},
		{"last_name", b.LastName},
		{"email", b.Email},
		{"phone", b.Phone},
		{"check_in", b.CheckIn},
	} {
		if err := required(f.name, f.value); err != nil {
			errs = append(errs, err)
		}
	}

	if b.Email != "" && !emailRegex.MatchString(b.Email) {
		errs = append(errs, &FieldError{Field: "email", Err: ErrInvalidEmail})
	}
	if b.Phone != "" && !phoneRegex.MatchString(b.Phone) {
		errs = append(errs, &FieldError{Field: "phone", Err: ErrInvalidPhone})
	}
	if !b.RoomType.Valid() {
		errs = append(errs, &FieldError{Field: "room_type", Err: ErrInvalidRoomType})
	}
	if b.People < 1 || b.People > MaxPeople {
		errs = append(errs, &FieldError{Field: "people", Err: ErrPeopleOutOfRange})
	}
	if b.Duration < 1 || b.Duration > MaxNights {
		errs = append(errs, &FieldError{Field: "duration", Err: ErrDurationOutOfBand})
	}
	if b.CheckIn != "" {
		checkIn, err := time.ParseInLocation(DateLayout, b.CheckIn, now.Location())
		switch {
		case err != nil:
			errs = append(errs, &FieldError{Field: "check_in", Err: ErrInvalidDate})
		case checkIn.Before(startOfDay(now)):
			errs = append(errs, &FieldError{Field: "check_in", Err: ErrCheckInInPast})
		}
	}

	return errors.Join(errs...)
}

// CheckOut returns the check-out date, or "" if check-in does not parse.
func (b BookingRequest) CheckOut() string {
	checkIn, err := time.Parse(DateLayout, b.CheckIn)
	if err != nil {
		return ""
	}
	return checkIn.AddDate(0, 0, b.Duration).Format(DateLayout)
}

// SignupRequest is the guest sign-up form.
type SignupRequest struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// Validate checks the sign-up form.
func (s SignupRequest) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"firstname", s.FirstName},
		{"lastname", s.LastName},
		{"username", s.Username},
		{"email", s.Email},
		{"password", s.Password},
		{"confirmpassword", s.ConfirmPassword},
	} {
		if err := required(f.name, f.value); err != nil {
			errs = append(errs, err)
		}
	}

	if s.Username != "" && !usernameRegex.MatchString(s.Username) {
		errs = append(errs, &FieldError{Field: "username", Err: ErrInvalidUsername})
	}
	if s.Email != "" && !emailRegex.MatchString(s.Email) {
		errs = append(errs, &FieldError{Field: "email", Err: ErrInvalidEmail})
	}
	if s.Password != "" && len(s.Password) < MinPasswordLength {
		errs = append(errs, &FieldError{Field: "password", Err: ErrPasswordTooShort})
	}
	if s.ConfirmPassword != "" && s.Password != s.ConfirmPassword {
		errs = append(errs, &FieldError{Field: "confirmpassword", Err: ErrPasswordMismatch})
	}

	return errors.Join(errs...)
}

// Credentials is a login form. Guests sign in by username; staff and
// administrators by email.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Validate checks that the identifier the login form asks for and a
// password are present.
func (c Credentials) Validate(byEmail bool) error {
	var errs []error
	if byEmail {
		if err := required("email", c.Email); err != nil {
			errs = append(errs, err)
		} else if !emailRegex.MatchString(c.Email) {
			errs = append(errs, &FieldError{Field: "email", Err: ErrInvalidEmail})
		}
	} else if err := required("username", c.Username); err != nil {
		errs = append(errs, err)
	}
	if err := required("password", c.Password); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
