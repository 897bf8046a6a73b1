package handlers

import (
	"github.com/anjiri1684/quick_stay/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type CheckoutRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	bookingID, _ := uuid.Parse(req.BookingID)

	// The success/cancel URLs point back to wherever the client came from.
	origin := c.Get("Origin")
	if origin == "" {
		return fail(c, fiber.StatusBadRequest, "Missing Origin header")
	}

	url, err := h.payments.CreateCheckoutSession(bookingID, origin)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}

func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	verified, err := h.payments.VerifyPayment(req.SessionID)
	if err != nil {
		return respondError(c, err)
	}

	if !verified {
		return c.JSON(fiber.Map{"success": false, "message": "Payment not completed"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payment verified successfully"})
}
