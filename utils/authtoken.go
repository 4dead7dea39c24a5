// utils/authtoken.go
package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/models"
)

const (
	// AuthCookieName is the session cookie the dashboard frontend reads
	AuthCookieName = "authToken"
	// TokenTTL is the validity window measured from the token's timestamp
	TokenTTL = 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	ErrExpiredToken = errors.New("auth token expired")
)

// EncodeAuthToken builds the cookie value: base64 of the payload as JSON.
// The value is deliberately not signed; the frontend decodes it directly.
func EncodeAuthToken(email, uid string) string {
	payload := models.TokenPayload{
		Email:     email,
		UID:       uid,
		Timestamp: time.Now().UnixMilli(),
	}
	raw, _ := json.Marshal(payload)
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeAuthToken parses a cookie value and enforces the 24h window
func DecodeAuthToken(token string) (*models.TokenPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var payload models.TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ErrInvalidToken
	}
	if payload.Email == "" || payload.UID == "" || payload.Timestamp == 0 {
		return nil, ErrInvalidToken
	}

	issued := time.UnixMilli(payload.Timestamp)
	if time.Since(issued) > TokenTTL {
		return nil, ErrExpiredToken
	}

	return &payload, nil
}

// SetAuthCookie attaches the session cookie to the response
func SetAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie expires the session cookie
func ClearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest pulls the token from the cookie, falling back to the
// Authorization header for non-browser clients
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(auth) > 7 && auth[:7] == "Bearer " {
		return auth[7:]
	}
	return ""
}
