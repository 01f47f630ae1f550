package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vangoframework/hotelier/internal/domain"
)

// ErrNoToken is returned when a login succeeds without an access token.
var ErrNoToken = errors.New("api returned no access token")

const accessTokenCookie = "access_token"

// Session is the outcome of a successful login or sign-up.
type Session struct {
	Message     string
	AccessToken string
	User        User
}

// Login signs in at path, one of the per-role login endpoints.
func (c *Client) Login(ctx context.Context, path string, creds domain.Credentials) (*Session, error) {
	return c.authenticate(ctx, "login", path, creds)
}

// Signup creates a guest account and signs it in.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*Session, error) {
	return c.authenticate(ctx, "signup", "/signup", req)
}

func (c *Client) authenticate(ctx context.Context, op, path string, body any) (*Session, error) {
	resp, err := c.send(ctx, op, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Message     string `json:"message"`
		AccessToken string `json:"access_token"`
		User        *User  `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", op, err)
	}

	token := out.AccessToken
	if token == "" {
		// Some endpoints only set the token as a cookie.
		for _, ck := range resp.Cookies() {
			if ck.Name == accessTokenCookie {
				token = ck.Value
				break
			}
		}
	}
	if token == "" {
		return nil, ErrNoToken
	}

	s := &Session{Message: out.Message, AccessToken: token}
	if out.User != nil {
		s.User = *out.User
	}
	return s, nil
}

// Logout ends the API session for the client's token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/logout", nil, nil, nil)
}

// Me returns the user the client's token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, "me", http.MethodGet, "/me", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &APIError{Operation: "me", StatusCode: http.StatusUnauthorized, Message: "not authenticated"}
	}
	return out.User, nil
}
