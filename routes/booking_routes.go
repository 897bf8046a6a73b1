package routes

import (
	"github.com/anjiri1684/quick_stay/handlers"
	"github.com/anjiri1684/quick_stay/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings")
	bookings.Post("/check-availability", h.CheckAvailability)
	bookings.Post("", middleware.Protected(), h.CreateBooking)
	bookings.Get("/me", middleware.Protected(), h.GetMyBookings)
}
