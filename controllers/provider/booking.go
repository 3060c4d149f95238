package provider

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// resolveProvider loads the caller's ServiceProvider profile. A plain
// customer account has none, which callers must treat as not found.
func resolveProvider(c *fiber.Ctx) (*models.ServiceProvider, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}

	var provider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Provider profile not found")
	}

	return &provider, nil
}

// GetProviderBookings returns bookings against the caller's listings,
// newest first, with an optional status filter and pagination
func GetProviderBookings(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsedPage := c.QueryInt("page"); parsedPage > 0 {
			page = parsedPage
		}
	}
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	offset := (page - 1) * limit

	query := db.DB.Preload("ServiceListing").Preload("Customer").
		Where("service_provider_id = ?", provider.ID)

	status := c.Query("status")
	if status != "" {
		if !models.IsValidStatus(models.BookingStatus(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown booking status filter",
			})
		}
		query = query.Where("booking_status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	// Hide customer credentials in the response
	for i := range bookings {
		bookings[i].Customer.Password = ""
	}

	var total int64
	countQuery := db.DB.Model(&models.Booking{}).Where("service_provider_id = ?", provider.ID)
	if status != "" {
		countQuery = countQuery.Where("booking_status = ?", status)
	}
	countQuery.Count(&total)

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
