package customer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"gorm.io/gorm"
)

// CreateReview adds a review for a completed booking and marks it reviewed
func CreateReview(c *fiber.Ctx) error {
	userIDVal := c.Locals("userID")
	userID, ok := userIDVal.(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	// Set the customer ID to the authenticated user
	review.CustomerID = userID

	// The booking must exist, belong to the caller and be completed
	var booking models.Booking
	if err := db.DB.First(&booking, "id = ? AND customer_id = ?", review.BookingID, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.BookingStatus != models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only completed bookings can be reviewed",
		})
	}

	if booking.IsReviewed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this booking",
		})
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this booking",
		})
	}

	review.ServiceProviderID = booking.ServiceProviderID
	review.ServiceListingID = booking.ServiceListingID

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&booking).Update("is_reviewed", true).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetListingReviews retrieves reviews for a specific listing
func GetListingReviews(c *fiber.Ctx) error {
	listingID := c.Params("id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.Preload("Customer").
		Where("service_listing_id = ?", listingID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	// Hide sensitive customer fields
	for i := range reviews {
		reviews[i].Customer.Password = ""
	}

	var count int64
	db.DB.Model(&models.Review{}).Where("service_listing_id = ?", listingID).Count(&count)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   count,
		"page":    page,
		"limit":   limit,
	})
}
