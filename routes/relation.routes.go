package routes

import (
	"NAKAMA_server/middlewares"
	"NAKAMA_server/services"

	"github.com/gofiber/fiber/v2"
)

func relationRoutes(api fiber.Router) {
	buddies := api.Group("/buddies")
	buddies.Use(middlewares.Authenticate)

	buddies.Get("/", services.GetBuddies)
	buddies.Post("/add", services.AddBuddy)
	buddies.Get("/requests", services.GetBuddyRequests)
	buddies.Post("/accept", services.AcceptBuddy)
	buddies.Post("/decline", services.DeclineBuddy)
}
