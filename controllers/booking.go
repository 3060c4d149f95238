package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
)

// statusIntro maps a new status to the notification wording for the customer.
var statusIntro = map[models.BookingStatus]string{
	models.StatusConfirmed: "Your booking has been confirmed by the provider.",
	models.StatusCompleted: "Your booking has been marked as completed.",
	models.StatusCancelled: "Your booking has been cancelled.",
	models.StatusRejected:  "Your booking has been declined by the provider.",
}

// UpdateBookingStatus moves a booking through its lifecycle. Customers may
// only cancel their own bookings; the listing's provider may confirm, reject
// or complete them. Transition legality is enforced by the model.
func UpdateBookingStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Status presence is checked before any lookup
	if input.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please provide a status",
		})
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Customer").Preload("ServiceListing").Preload("ServiceProvider.User").
		First(&booking, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	switch {
	case booking.CustomerID == userID:
		if input.Status != models.StatusCancelled {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "Customers can only cancel their bookings",
			})
		}
	case booking.ServiceProvider.UserID == userID:
		if input.Status != models.StatusConfirmed && input.Status != models.StatusRejected && input.Status != models.StatusCompleted {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "Providers can only confirm, reject or complete bookings",
			})
		}
	default:
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You are not a party to this booking",
		})
	}

	if err := booking.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status update",
			Error:   err.Error(),
		})
	}

	go notifyStatusChange(booking)

	booking.Customer.Password = ""
	booking.ServiceProvider.User.Password = ""

	return c.JSON(booking)
}

// notifyStatusChange mails both parties about the new status. Failures are
// logged, never surfaced to the caller.
func notifyStatusChange(booking models.Booking) {
	intro, ok := statusIntro[booking.BookingStatus]
	if !ok {
		return
	}

	when := booking.ServiceDateTime.Format("2006-01-02 15:04:05")

	customerBody := utils.BookingEmailBody(
		booking.Customer.Name, intro,
		booking.ServiceListing.Title,
		"Provider", booking.ServiceProvider.User.Name,
		when, string(booking.BookingStatus), booking.TotalAmount,
	)
	if err := utils.SendEmail(booking.Customer.Email, fmt.Sprintf("Booking %s", booking.BookingStatus), customerBody); err != nil {
		log.Printf("Failed to send status email for booking %d: %v", booking.ID, err)
	}

	providerBody := utils.BookingEmailBody(
		booking.ServiceProvider.User.Name,
		fmt.Sprintf("Booking #%d is now %s.", booking.ID, booking.BookingStatus),
		booking.ServiceListing.Title,
		"Customer", booking.Customer.Name,
		when, string(booking.BookingStatus), booking.TotalAmount,
	)
	if err := utils.SendEmail(booking.ServiceProvider.User.Email, fmt.Sprintf("Booking %s", booking.BookingStatus), providerBody); err != nil {
		log.Printf("Failed to send status email for booking %d: %v", booking.ID, err)
	}
}
