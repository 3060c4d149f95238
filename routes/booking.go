package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers/customer"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers/provider"
	"github.com/harshkathrotiya/fixlyweb-sub001/middleware"
)

// SetupBookingRoutes configures the booking lifecycle routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/api/bookings", middleware.Protected())
	booking.Post("/", customer.CreateBooking)
	booking.Get("/customer", customer.GetCustomerBookings)
	booking.Get("/provider", provider.GetProviderBookings)
	booking.Put("/:id/status", controllers.UpdateBookingStatus)
}
