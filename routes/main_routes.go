// routes/main_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	customMiddleware "github.com/oohdesk/oohdesk_backend/middleware"
	"github.com/oohdesk/oohdesk_backend/websocket"
)

// RegisterMainRoutes wires the liveness endpoints and the dashboard websocket
func RegisterMainRoutes(e *echo.Echo, wsHub *websocket.Hub) {
	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "OOHDesk Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	wsGroup := e.Group("/api/ws")
	wsGroup.Use(customMiddleware.RequireAuth())
	wsGroup.GET("", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, wsHub, customMiddleware.SessionUID(c))
	})
}
