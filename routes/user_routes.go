// routes/user_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterUserRoutes(e *echo.Echo, userController *controllers.UserController) {
	userGroup := e.Group("/api/users")
	userGroup.Use(customMiddleware.RequireAuth())

	userGroup.GET("", userController.GetUsers)
	userGroup.PATCH("/block", userController.BlockUser)
}
