// routes/vendor_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterVendorRoutes(e *echo.Echo, vendorController *controllers.VendorController) {
	vendorGroup := e.Group("/api/vendor")
	vendorGroup.Use(customMiddleware.RequireAuth())

	vendorGroup.GET("", vendorController.GetVendors)
	vendorGroup.POST("/add-vendor", vendorController.AddVendor)
	vendorGroup.GET("/:id", vendorController.GetVendor)
	vendorGroup.PUT("/:id/edit", vendorController.EditVendor)
	vendorGroup.PATCH("/:id/status", vendorController.UpdateVendorStatus)
	vendorGroup.DELETE("/:id", vendorController.DeleteVendor)
}
