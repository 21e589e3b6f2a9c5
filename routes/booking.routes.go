package routes

import (
	"NAKAMA_server/middlewares"
	"NAKAMA_server/services"

	"github.com/gofiber/fiber/v2"
)

func bookingRoutes(api fiber.Router) {
	hotels := api.Group("/hotels")
	hotels.Use(middlewares.Authenticate)
	hotels.Post("/book", services.BookHotel)

	events := api.Group("/events")
	events.Use(middlewares.Authenticate)
	events.Post("/rsvp", services.RsvpEvent)
}
