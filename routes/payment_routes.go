package routes

import (
	"github.com/anjiri1684/quick_stay/handlers"
	"github.com/anjiri1684/quick_stay/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("/checkout", h.CreateCheckoutSession)
	payments.Post("/verify", h.VerifyPayment)
}
