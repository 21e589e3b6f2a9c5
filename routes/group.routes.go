package routes

import (
	"NAKAMA_server/middlewares"
	"NAKAMA_server/services"

	"github.com/gofiber/fiber/v2"
)

func groupRoutes(api fiber.Router) {
	groups := api.Group("/groups")
	groups.Use(middlewares.Authenticate)

	groups.Get("/", services.GetGroups)
	groups.Post("/create", services.CreateGroup)
	groups.Get("/:groupID", services.GetGroup)
	groups.Get("/:groupID/messages", services.GetGroupMessages)
	groups.Post("/:groupID/messages/send", services.SendGroupMessage)
}
