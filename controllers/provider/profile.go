package provider

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// GetProviderProfile retrieves the caller's provider profile with account info
func GetProviderProfile(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	var full models.ServiceProvider
	if err := db.DB.Preload("User").First(&full, provider.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch provider profile",
			Error:   err.Error(),
		})
	}

	full.User.Password = ""

	return c.JSON(fiber.Map{
		"profile": full,
	})
}

// UpdateProviderProfile updates the caller's business details
func UpdateProviderProfile(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Verification and commission are admin-managed, identity is immutable
	fieldsToIgnore := []string{"id", "ID", "user_id", "UserID", "is_verified", "commission_rate"}
	for _, field := range fieldsToIgnore {
		delete(updateData, field)
	}

	if err := db.DB.Model(provider).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider profile",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": provider,
	})
}
