package customer

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// GetProfile returns the profile of the logged-in customer
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("Role").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Password = ""

	return c.JSON(user)
}

// UpdateProfile updates name and phone number for the logged-in customer
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	// Only profile fields may change through this endpoint
	fieldsToIgnore := []string{"id", "ID", "email", "role", "Role", "RoleID", "role_id", "password", "is_verified"}
	for _, field := range fieldsToIgnore {
		delete(updateData, field)
	}

	if err := db.DB.Model(&user).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	user.Password = ""

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": user,
	})
}

// UpdateProfilePicture uploads a new profile picture to Cloudinary
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No picture file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("user-%d-%s", userID, utils.GenerateUUID())
	url, err := utils.UploadToCloudinary(file, publicID, "fixly/profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload picture",
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_picture", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save picture URL",
		})
	}

	return c.JSON(fiber.Map{
		"message":         "Profile picture updated",
		"profile_picture": url,
	})
}
