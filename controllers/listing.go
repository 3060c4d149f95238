package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/redis"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// GetAllListings returns active listings with optional category filter and search
func GetAllListings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	categoryID := c.Query("category")
	search := c.Query("search")

	query := db.DB.Preload("Category").Preload("ServiceProvider.User").
		Where("is_active = ?", true)

	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var listings []models.ServiceListing
	if err := query.Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch listings",
			Error:   err.Error(),
		})
	}

	for i := range listings {
		listings[i].ServiceProvider.User.Password = ""
	}

	// The count carries the same filters as the page, or pages lies
	var count int64
	countQuery := db.DB.Model(&models.ServiceListing{}).Where("is_active = ?", true)
	if categoryID != "" {
		countQuery = countQuery.Where("category_id = ?", categoryID)
	}
	if search != "" {
		countQuery = countQuery.Where("title ILIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	return c.JSON(fiber.Map{
		"listings": listings,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    (int(count) + limit - 1) / limit,
	})
}

// GetListing returns a single listing, served from the redis cache when warm
func GetListing(c *fiber.Ctx) error {
	id := c.Params("id")

	if payload := redis.GetCachedListing(id); payload != nil {
		c.Set("Content-Type", "application/json")
		return c.Send(payload)
	}

	var listing models.ServiceListing
	if err := db.DB.Preload("Category").Preload("ServiceProvider.User").
		First(&listing, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service listing not found",
			Error:   err.Error(),
		})
	}

	listing.ServiceProvider.User.Password = ""

	if payload, err := json.Marshal(listing); err == nil {
		redis.CacheListing(id, payload)
	}

	return c.JSON(listing)
}
