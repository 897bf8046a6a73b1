package handlers

import (
	"errors"

	"github.com/anjiri1684/quick_stay/database"
	"github.com/anjiri1684/quick_stay/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Room catalog is read-only here; creating and editing rooms is not part of
// this service.

func GetRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.Preload("Hotel").Order("created_at desc").Find(&rooms).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch rooms")
	}
	return c.JSON(fiber.Map{"success": true, "rooms": rooms})
}

func GetRoom(c *fiber.Ctx) error {
	roomID := c.Params("roomId")

	var room models.Room
	if err := database.DB.Preload("Hotel").First(&room, "id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, fiber.StatusNotFound, "Room not found")
		}
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch room")
	}
	return c.JSON(fiber.Map{"success": true, "room": room})
}
