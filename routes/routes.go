package routes

import (
	"NAKAMA_server/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetRoutes sets all routes of server
func SetRoutes(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
	}))

	api := app.Group(config.Config.Version)

	authRoutes(api)
	relationRoutes(api)
	chatRoutes(api)
	groupRoutes(api)
	profileRoutes(api)
	bookingRoutes(api)
	publicRoutes(api)
}
