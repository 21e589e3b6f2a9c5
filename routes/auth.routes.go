package routes

import (
	"NAKAMA_server/services"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(api fiber.Router) {
	api.Post("/check-username", services.CheckUsername)
	api.Post("/signup", services.Signup)
	api.Post("/init-demo", services.InitDemo)
}
