// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

// Context keys populated by RequireAuth
const (
	ContextKeyEmail = "email"
	ContextKeyUID   = "uid"
)

// RequireAuth guards the dashboard API. Every /api route except login, the
// public inquiry form and health checks needs a decodable, unexpired authToken
// cookie. The page-level redirect to /login lives in the frontend router; the
// API answers 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := utils.TokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Authentication required",
				})
			}

			payload, err := utils.DecodeAuthToken(token)
			if err != nil {
				message := "Invalid auth token"
				if err == utils.ErrExpiredToken {
					message = "Session expired, please log in again"
				}
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: message,
				})
			}

			c.Set(ContextKeyEmail, payload.Email)
			c.Set(ContextKeyUID, payload.UID)
			return next(c)
		}
	}
}

// SessionEmail returns the authenticated admin's email from the context
func SessionEmail(c echo.Context) string {
	if email, ok := c.Get(ContextKeyEmail).(string); ok {
		return email
	}
	return ""
}

// SessionUID returns the authenticated admin's uid from the context
func SessionUID(c echo.Context) string {
	if uid, ok := c.Get(ContextKeyUID).(string); ok {
		return uid
	}
	return ""
}
