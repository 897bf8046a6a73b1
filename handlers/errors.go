package handlers

import (
	"errors"
	"log"

	"github.com/anjiri1684/quick_stay/payments"
	"github.com/anjiri1684/quick_stay/services"
	"github.com/gofiber/fiber/v2"
)

// respondError converts a service error into the uniform response envelope.
// Every failure leaves the caller with a success flag and a readable message.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return fail(c, fiber.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrRoomUnavailable):
		return fail(c, fiber.StatusConflict, "Room is not available")
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNoHotel):
		return fail(c, fiber.StatusNotFound, "No Hotel Found")
	case errors.Is(err, payments.ErrGateway):
		log.Printf("🔥 Payment gateway failure: %v", err)
		return fail(c, fiber.StatusBadGateway, "Payment gateway is unavailable, please try again.")
	default:
		log.Printf("🔥 Unexpected error: %v", err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong, please try again.")
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}
