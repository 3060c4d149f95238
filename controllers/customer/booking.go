package customer

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
	"gorm.io/gorm"
)

// CreateBooking books an active listing for the authenticated customer. The
// provider reference and the total amount are copied from the listing at
// creation time; later price changes never touch existing bookings.
func CreateBooking(c *fiber.Ctx) error {
	type BookingInput struct {
		ServiceListingID    uint      `json:"service_listing_id"`
		ServiceDateTime     time.Time `json:"service_date_time"`
		SpecialInstructions string    `json:"special_instructions"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.ServiceListingID == 0 || input.ServiceDateTime.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please provide all required fields",
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var listing models.ServiceListing
	if err := db.DB.First(&listing, input.ServiceListingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service listing not found",
			Error:   err.Error(),
		})
	}

	if !listing.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "This service is currently unavailable",
		})
	}

	booking := models.Booking{
		CustomerID:          userID,
		ServiceProviderID:   listing.ServiceProviderID,
		ServiceListingID:    listing.ID,
		ServiceDateTime:     input.ServiceDateTime,
		SpecialInstructions: input.SpecialInstructions,
		TotalAmount:         listing.ServicePrice,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	go notifyBookingCreated(booking.ID)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetCustomerBookings returns the caller's bookings, newest first
func GetCustomerBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("ServiceListing").Preload("ServiceProvider.User").
		Where("customer_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].ServiceProvider.User.Password = ""
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// notifyBookingCreated mails the customer and the provider about a new
// booking. Failures are logged, never surfaced to the caller.
func notifyBookingCreated(bookingID uint) {
	var booking models.Booking
	if err := db.DB.Preload("Customer").Preload("ServiceListing").Preload("ServiceProvider.User").
		First(&booking, bookingID).Error; err != nil {
		log.Printf("Failed to load booking %d for notification: %v", bookingID, err)
		return
	}

	when := booking.ServiceDateTime.Format("2006-01-02 15:04:05")

	customerBody := utils.BookingEmailBody(
		booking.Customer.Name,
		"Your booking has been placed and is awaiting provider confirmation.",
		booking.ServiceListing.Title,
		"Provider", booking.ServiceProvider.User.Name,
		when, string(booking.BookingStatus), booking.TotalAmount,
	)
	if err := utils.SendEmail(booking.Customer.Email, "Booking Placed", customerBody); err != nil {
		log.Printf("Failed to send booking email for booking %d: %v", booking.ID, err)
	}

	providerBody := utils.BookingEmailBody(
		booking.ServiceProvider.User.Name,
		fmt.Sprintf("You have a new booking request #%d.", booking.ID),
		booking.ServiceListing.Title,
		"Customer", booking.Customer.Name,
		when, string(booking.BookingStatus), booking.TotalAmount,
	)
	if err := utils.SendEmail(booking.ServiceProvider.User.Email, "New Booking Request", providerBody); err != nil {
		log.Printf("Failed to send booking email for booking %d: %v", booking.ID, err)
	}
}
