// routes/inquiry_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/oohdesk/oohdesk_backend/controllers"
	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
)

func RegisterInquiryRoutes(e *echo.Echo, inquiryController *controllers.InquiryController) {
	// The public website posts inquiries without a session
	e.POST("/api/inquiries", inquiryController.CreateInquiry)

	inquiryGroup := e.Group("/api/inquiries")
	inquiryGroup.Use(customMiddleware.RequireAuth())

	inquiryGroup.GET("", inquiryController.GetInquiries)
	inquiryGroup.GET("/unread-count", inquiryController.GetUnreadCounts)
	inquiryGroup.PATCH("/:id/read", inquiryController.MarkInquiryRead)
}
