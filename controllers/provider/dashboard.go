package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// GetDashboardOverview returns booking and revenue statistics for the caller
func GetDashboardOverview(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		RejectedCount  int64     `json:"rejected_count"`
		TotalListings  int64     `json:"total_listings"`
		TotalRevenue   float64   `json:"total_revenue"`
		CommissionDue  float64   `json:"commission_due"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	// Fresh query per count, a reused chain would accumulate conditions
	countByStatus := func(status models.BookingStatus, into *int64) {
		db.DB.Model(&models.Booking{}).
			Where("service_provider_id = ? AND booking_status = ?", provider.ID, status).
			Count(into)
	}

	db.DB.Model(&models.Booking{}).
		Where("service_provider_id = ?", provider.ID).
		Count(&statistics.TotalBookings)
	countByStatus(models.StatusPending, &statistics.PendingCount)
	countByStatus(models.StatusConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.StatusCompleted, &statistics.CompletedCount)
	countByStatus(models.StatusCancelled, &statistics.CancelledCount)
	countByStatus(models.StatusRejected, &statistics.RejectedCount)

	db.DB.Model(&models.ServiceListing{}).
		Where("service_provider_id = ?", provider.ID).
		Count(&statistics.TotalListings)

	// Revenue from completed bookings uses the amount frozen at creation
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Model(&models.Booking{}).
		Where("service_provider_id = ? AND booking_status = ?", provider.ID, models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0) as total_revenue").
		Scan(&revenueResult)

	statistics.TotalRevenue = revenueResult.TotalRevenue
	statistics.CommissionDue = revenueResult.TotalRevenue * provider.CommissionRate / 100
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentBookings returns the most recent bookings for the caller
func GetRecentBookings(c *fiber.Ctx) error {
	provider, err := resolveProvider(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(utils.ErrorResponse{
			Message: ferr.Message,
		})
	}

	limit := 5
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var bookings []models.Booking
	if err := db.DB.Preload("ServiceListing").Preload("Customer").
		Where("service_provider_id = ?", provider.ID).
		Order("created_at desc").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch recent bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].Customer.Password = ""
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
