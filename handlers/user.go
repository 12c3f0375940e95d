package handlers

import (
	"encoding/json"
	"strconv"

	"picpoints/cache"
	"picpoints/database"
	"picpoints/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile returns the public profile for a username.
func GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	return c.JSON(user.Profile())
}

// GetTopUsers returns the top N users by currency points, served from the
// Redis cache when warm.
func GetTopUsers(c *fiber.Ctx) error {
	top, err := strconv.Atoi(c.Params("top"))
	if err != nil || top <= 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if cached := cache.GetLeaderboard(c.UserContext(), top); cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var users []models.User
	if err := database.DB.Order("currency_points desc").Limit(top).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	entries := []models.LeaderboardEntry{}
	for _, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			ID:       u.ID,
			Username: u.Username,
			Points:   u.CurrencyPoints,
		})
	}

	if payload, err := json.Marshal(entries); err == nil {
		cache.SetLeaderboard(c.UserContext(), top, string(payload))
	}

	return c.JSON(entries)
}
