package auth

import (
	"encoding/gob"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

func init() {
	// Register types for gob encoding
	gob.Register(uuid.UUID{})
	gob.Register(SessionData{})
}

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "hotelier_session"

// SessionData holds the signed-in user as stored in the cookie.
type SessionData struct {
	ID          uuid.UUID
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        Role
	AccessToken string // bearer token for the hotel API
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// DisplayName returns the user's full name, falling back to the username.
func (s *SessionData) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name != "" {
		return name
	}
	if s.Username != "" {
		return s.Username
	}
	return s.Email
}

// SessionStore manages session cookies.
type SessionStore struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewSessionStore creates a new session store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewSessionStore(secret string, maxAge time.Duration, secure bool) *SessionStore {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &SessionStore{
		cookie: securecookie.New(hashKey, blockKey),
		name:   SessionCookieName,
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// Get restores the session from the request cookie.
func (s *SessionStore) Get(r *http.Request) (*SessionData, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, http.ErrNoCookie
	}

	return &data, nil
}

// Set stores the session data in a cookie. A new session id is assigned if
// the data has none.
func (s *SessionStore) Set(w http.ResponseWriter, data *SessionData) error {
	if data.ID == uuid.Nil {
		data.ID = uuid.New()
	}
	data.CreatedAt = time.Now()
	data.ExpiresAt = time.Now().Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the session cookie.
func (s *SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
