// routes/ambassador_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterAmbassadorRoutes(e *echo.Echo, ambassadorController *controllers.AmbassadorController) {
	ambassadorGroup := e.Group("/api/ambassadors")
	ambassadorGroup.Use(customMiddleware.RequireAuth())

	ambassadorGroup.GET("", ambassadorController.GetAmbassadors)
	ambassadorGroup.GET("/:id", ambassadorController.GetAmbassador)
	ambassadorGroup.PUT("/:id", ambassadorController.UpdateAmbassador)
}
