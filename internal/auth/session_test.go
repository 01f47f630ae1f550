package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/hotelier/internal/auth"
)

// testSecret is a 64-byte secret for testing
const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestSessionStore_SetAndGet(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	session := &auth.SessionData{
		Username:    "jdoe",
		Email:       "jane@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		Role:        auth.RoleAdmin,
		AccessToken: "token-value",
	}

	w := httptest.NewRecorder()
	err := store.Set(w, session)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "hotelier_session", cookies[0].Name)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	got, err := store.Get(req)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, auth.RoleAdmin, got.Role)
	assert.Equal(t, "token-value", got.AccessToken)
	assert.Equal(t, "Jane Doe", got.DisplayName())
}

func TestSessionStore_KeepsExistingID(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)
	id := uuid.New()

	w := httptest.NewRecorder()
	require.NoError(t, store.Set(w, &auth.SessionData{ID: id, Email: "a@b.c"}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(w.Result().Cookies()[0])

	got, err := store.Get(req)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestSessionStore_NoCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_ExpiredSession(t *testing.T) {
	// Negative max age: already expired
	store := auth.NewSessionStore(testSecret, -time.Hour, false)

	w := httptest.NewRecorder()
	err := store.Set(w, &auth.SessionData{Username: "jdoe"})
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	_, err = store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_Clear(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "hotelier_session", cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionStore_SecureCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, true)

	w := httptest.NewRecorder()
	err := store.Set(w, &auth.SessionData{Username: "jdoe"})
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessionStore_InvalidCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  "hotelier_session",
		Value: "invalid-cookie-value",
	})

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionData_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		data auth.SessionData
		want string
	}{
		{"full name", auth.SessionData{FirstName: "Jane", LastName: "Doe", Username: "jdoe"}, "Jane Doe"},
		{"first only", auth.SessionData{FirstName: "Jane"}, "Jane"},
		{"username", auth.SessionData{Username: "jdoe", Email: "j@x.io"}, "jdoe"},
		{"email", auth.SessionData{Email: "j@x.io"}, "j@x.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.data.DisplayName())
		})
	}
}
