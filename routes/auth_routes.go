// routes/auth_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	authGroup := e.Group("/api/auth")

	// Login is the only public auth route
	authGroup.POST("/login", authController.Login)

	sessionGroup := authGroup.Group("")
	sessionGroup.Use(customMiddleware.RequireAuth())
	sessionGroup.POST("/logout", authController.Logout)
	sessionGroup.GET("/me", authController.Me)
}
