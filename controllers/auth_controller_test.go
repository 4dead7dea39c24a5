package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oohdesk/oohdesk_backend/middleware"
	"github.com/oohdesk/oohdesk_backend/utils"
)

func TestLoginIssuesCookie(t *testing.T) {
	ac := NewAuthController()

	c, rec := newValidatedJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"Admin@OOHDesk.in","uid":"uid-123"}`)
	require.NoError(t, ac.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)

	cookies := rec.Result().Cookies()
	var authCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == utils.AuthCookieName {
			authCookie = cookie
		}
	}
	require.NotNil(t, authCookie, "login must set the session cookie")
	assert.True(t, authCookie.HttpOnly)

	payload, err := utils.DecodeAuthToken(authCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin@oohdesk.in", payload.Email, "email is normalized to lowercase")
	assert.Equal(t, "uid-123", payload.UID)
}

func TestLoginMissingFields(t *testing.T) {
	ac := NewAuthController()

	c, rec := newValidatedJSONContext(http.MethodPost, "/api/auth/login", `{"email":"admin@oohdesk.in"}`)
	require.NoError(t, ac.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and uid are required", decodeResponse(t, rec).Message)
}

func TestLoginBadEmail(t *testing.T) {
	ac := NewAuthController()

	c, rec := newValidatedJSONContext(http.MethodPost, "/api/auth/login", `{"email":"not-an-email","uid":"uid-123"}`)
	require.NoError(t, ac.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	ac := NewAuthController()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/logout", "")
	require.NoError(t, ac.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	var cleared bool
	for _, cookie := range cookies {
		if cookie.Name == utils.AuthCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the session cookie")
}

func TestMeReturnsSession(t *testing.T) {
	ac := NewAuthController()

	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.ContextKeyEmail, "admin@oohdesk.in")
	c.Set(middleware.ContextKeyUID, "uid-123")
	require.NoError(t, ac.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	require.True(t, body.Success)
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin@oohdesk.in", data["email"])
	assert.Equal(t, "uid-123", data["uid"])
}
