package routes

import (
	"NAKAMA_server/middlewares"
	"NAKAMA_server/services"

	"github.com/gofiber/fiber/v2"
)

func profileRoutes(api fiber.Router) {
	profile := api.Group("/profile")
	profile.Use(middlewares.Authenticate)

	profile.Get("/", services.Profile)
	profile.Get("/favorites", services.GetFavorites)
	profile.Post("/favorites/add", services.AddFavorite)
	profile.Post("/favorites/remove", services.RemoveFavorite)
	profile.Get("/logs", services.GetLogs)
	profile.Post("/logs/add", services.AddLog)
	profile.Get("/documents", services.GetDocuments)
	profile.Post("/documents/add", services.AddDocument)
}
