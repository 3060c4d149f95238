package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// GetAllCategories returns the active service categories
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.ServiceCategory
	if err := db.DB.Where("is_active = ?", true).Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetCategoryListings returns active listings under one category
func GetCategoryListings(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.ServiceCategory
	if err := db.DB.First(&category, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}

	var listings []models.ServiceListing
	if err := db.DB.Preload("ServiceProvider.User").
		Where("category_id = ? AND is_active = ?", category.ID, true).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch listings",
			Error:   err.Error(),
		})
	}

	for i := range listings {
		listings[i].ServiceProvider.User.Password = ""
	}

	return c.JSON(fiber.Map{
		"category": category,
		"listings": listings,
	})
}
