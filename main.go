package main

import (
	"log"
	"net/http"
	"os"

	"mime"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/oohdesk/oohdesk_backend/config"
	"github.com/oohdesk/oohdesk_backend/controllers"
	"github.com/oohdesk/oohdesk_backend/middleware"
	"github.com/oohdesk/oohdesk_backend/repositories"
	"github.com/oohdesk/oohdesk_backend/routes"
	"github.com/oohdesk/oohdesk_backend/security"
	"github.com/oohdesk/oohdesk_backend/utils"
	"github.com/oohdesk/oohdesk_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	// Initialize Firebase (auth verification + storage bucket)
	config.InitFirebase()

	// Connect to Redis; nil means the filter-options cache runs in-memory
	redisClient := config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()
	db := client.Database(config.DatabaseName())

	// Create WebSocket hub for dashboard notifications
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  true, // Set to false in production
	}))
	e.Use(contentTypeGuard())
	e.Use(httpsRedirect())

	// Filter-options cache, Redis-backed when available
	optionCache := utils.NewOptionCache(redisClient, "location:filter-options")

	// Initialize repositories
	ambassadorRepo := repositories.NewAmbassadorRepository(db)

	// Initialize controllers
	authController := controllers.NewAuthController()
	brandController := controllers.NewBrandController(db)
	vendorController := controllers.NewVendorController(db)
	locationController := controllers.NewLocationController(db, optionCache)
	ambassadorController := controllers.NewAmbassadorController(ambassadorRepo)
	inquiryController := controllers.NewInquiryController(db, wsHub)
	userController := controllers.NewUserController(db)

	// Register routes
	routes.RegisterMainRoutes(e, wsHub)
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterBrandRoutes(e, brandController)
	routes.RegisterVendorRoutes(e, vendorController)
	routes.RegisterLocationRoutes(e, locationController)
	routes.RegisterAmbassadorRoutes(e, ambassadorController)
	routes.RegisterInquiryRoutes(e, inquiryController)
	routes.RegisterUserRoutes(e, userController)

	// Local upload storage, used when the Firebase bucket is not configured
	if err := utils.InitializeStorage(); err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}
	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}

// contentTypeGuard rejects mutating requests with unexpected body types before
// they reach the handlers
func contentTypeGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch {
				return next(c)
			}
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if contentType == "" || security.ValidateContentType(contentType) {
				return next(c)
			}

			requestID, _ := security.GenerateRequestID()
			log.Printf("Rejected request %s with content type %q, headers: %v",
				requestID, contentType, security.SanitizeHeaders(c.Request().Header))

			return c.JSON(http.StatusUnsupportedMediaType, map[string]string{
				"message": "Unsupported content type",
			})
		}
	}
}
