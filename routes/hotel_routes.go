package routes

import (
	"github.com/anjiri1684/quick_stay/handlers"
	"github.com/anjiri1684/quick_stay/middleware"
	"github.com/gofiber/fiber/v2"
)

func HotelRoutes(app *fiber.App, h *handlers.HotelHandler) {
	api := app.Group("/api/v1")

	hotels := api.Group("/hotels", middleware.Protected(), middleware.OwnerRequired())
	hotels.Get("/dashboard", h.GetDashboard)

	rooms := api.Group("/rooms")
	rooms.Get("", handlers.GetRooms)
	rooms.Get("/:roomId", handlers.GetRoom)
}
