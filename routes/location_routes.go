// routes/location_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterLocationRoutes(e *echo.Echo, locationController *controllers.LocationController) {
	locationGroup := e.Group("/api/location")
	locationGroup.Use(customMiddleware.RequireAuth())

	locationGroup.GET("", locationController.GetLocations)
	locationGroup.POST("/add-location", locationController.AddLocation)
	locationGroup.POST("/bulk", locationController.BulkImportLocations)
	// filter-options must register before /:id so echo doesn't treat it as an id
	locationGroup.GET("/filter-options", locationController.GetFilterOptions)
	locationGroup.GET("/:id", locationController.GetLocation)
	locationGroup.PUT("/:id", locationController.UpdateLocation)
	locationGroup.DELETE("/:id", locationController.DeleteLocation)
	locationGroup.POST("/:id/delete", locationController.SoftDeleteLocation)
	locationGroup.GET("/:id/qrcode", locationController.GetLocationQRCode)
}
