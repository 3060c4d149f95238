package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers/customer"
	"github.com/harshkathrotiya/fixlyweb-sub001/middleware"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/api/customer", middleware.Protected())
	customerGroup.Get("/profile", customer.GetProfile)
	customerGroup.Patch("/profile", customer.UpdateProfile)
	customerGroup.Post("/profile/picture", customer.UpdateProfilePicture)

	app.Post("/api/reviews", middleware.Protected(), customer.CreateReview)
}
