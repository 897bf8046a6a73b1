package handlers

import (
	"github.com/anjiri1684/quick_stay/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type HotelHandler struct {
	dashboard *services.DashboardService
}

func NewHotelHandler(dashboard *services.DashboardService) *HotelHandler {
	return &HotelHandler{dashboard: dashboard}
}

func (h *HotelHandler) GetDashboard(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	ownerID, _ := uuid.Parse(claims["user_id"].(string))

	data, err := h.dashboard.Summarize(ownerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "dashboard_data": data})
}
