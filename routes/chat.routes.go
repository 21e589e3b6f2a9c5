package routes

import (
	"NAKAMA_server/middlewares"
	"NAKAMA_server/services"

	"github.com/gofiber/fiber/v2"
)

func chatRoutes(api fiber.Router) {
	chat := api.Group("/chat")
	chat.Use(middlewares.Authenticate)

	chat.Post("/send", services.SendMessage)
	chat.Get("/:buddyID", services.GetMessages)
}
