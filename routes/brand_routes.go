// routes/brand_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterBrandRoutes(e *echo.Echo, brandController *controllers.BrandController) {
	brandGroup := e.Group("/api/brands")
	brandGroup.Use(customMiddleware.RequireAuth())

	brandGroup.GET("", brandController.GetBrands)
	brandGroup.POST("/add-brand", brandController.AddBrand)
	brandGroup.GET("/:id", brandController.GetBrand)
	brandGroup.PUT("/:id/edit", brandController.EditBrand)
	// Campaign fields merge into campaigns.<id>.* on the brand document
	brandGroup.PUT("/:id", brandController.UpdateCampaign)
	brandGroup.POST("/:id/campaigns", brandController.CreateCampaign)
	brandGroup.DELETE("/:id", brandController.DeleteBrand)
}
