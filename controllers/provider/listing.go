package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/redis"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// GetMyListings returns all listings owned by the caller's provider profile
func GetMyListings(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	var listings []models.ServiceListing
	if err := db.DB.Preload("Category").
		Where("service_provider_id = ?", provider.ID).
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch listings",
			Error:   err.Error(),
		})
	}

	return c.JSON(listings)
}

// CreateListing creates a new listing for the caller's provider profile
func CreateListing(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	listing := new(models.ServiceListing)
	if err := c.BodyParser(listing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if listing.Title == "" || listing.ServicePrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please provide a title and a positive price",
		})
	}

	var category models.ServiceCategory
	if err := db.DB.First(&category, listing.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
		})
	}

	listing.ServiceProviderID = provider.ID
	listing.IsActive = true

	if err := db.DB.Create(listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create listing",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// UpdateListing updates an owned listing and drops it from the browse cache
func UpdateListing(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	id := c.Params("id")
	var existing models.ServiceListing
	if db.DB.Where("id = ? AND service_provider_id = ?", id, provider.ID).
		First(&existing).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Listing not found",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Ownership and identity never change through this endpoint
	fieldsToIgnore := []string{"id", "ID", "service_provider_id", "ServiceProviderID"}
	for _, field := range fieldsToIgnore {
		delete(updateData, field)
	}

	if err := db.DB.Model(&existing).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update listing",
			Error:   err.Error(),
		})
	}

	redis.InvalidateListing(id)

	return c.JSON(existing)
}

// DeleteListing soft-deletes an owned listing
func DeleteListing(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	id := c.Params("id")
	var listing models.ServiceListing
	if db.DB.Where("id = ? AND service_provider_id = ?", id, provider.ID).
		First(&listing).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Listing not found",
		})
	}

	if err := db.DB.Delete(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete listing",
			Error:   err.Error(),
		})
	}

	redis.InvalidateListing(id)

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadListingImage uploads a listing image to Cloudinary
func UploadListingImage(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	id := c.Params("id")
	var listing models.ServiceListing
	if db.DB.Where("id = ? AND service_provider_id = ?", id, provider.ID).
		First(&listing).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Listing not found",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No image file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("listing-%d-%s", listing.ID, utils.GenerateUUID())
	url, err := utils.UploadToCloudinary(file, publicID, "fixly/listings")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&listing).Update("image_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
		})
	}

	redis.InvalidateListing(id)

	return c.JSON(fiber.Map{
		"message":   "Listing image updated",
		"image_url": url,
	})
}
