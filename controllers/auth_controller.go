package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/config"
	"github.com/oohdesk/oohdesk_backend/middleware"
	"github.com/oohdesk/oohdesk_backend/models"
	"github.com/oohdesk/oohdesk_backend/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login issues the dashboard session cookie. The credential pair is the
// Firebase Auth {email, uid}; when the admin SDK is configured the uid is
// verified against it, otherwise the pair is taken as-is (local development).
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and uid are required",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if authClient := config.FirebaseAuth(c.Request().Context()); authClient != nil {
		record, err := authClient.GetUser(c.Request().Context(), req.UID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Unknown account",
			})
		}
		if !strings.EqualFold(record.Email, email) {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Email does not match account",
			})
		}
	}

	token := utils.EncodeAuthToken(email, req.UID)
	utils.SetAuthCookie(c, token)

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged in",
		Data: map[string]string{
			"email": email,
			"uid":   req.UID,
		},
	})
}

// Logout expires the session cookie
func (ac *AuthController) Logout(c echo.Context) error {
	utils.ClearAuthCookie(c)
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out",
	})
}

// Me returns the decoded session for the frontend's session check
func (ac *AuthController) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: map[string]string{
			"email": middleware.SessionEmail(c),
			"uid":   middleware.SessionUID(c),
		},
	})
}
