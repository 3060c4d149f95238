package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers/customer"
)

// SetupListingRoutes configures the public browse routes
func SetupListingRoutes(app *fiber.App) {
	listing := app.Group("/api/listings")
	listing.Get("/", controllers.GetAllListings)
	listing.Get("/:id", controllers.GetListing)
	listing.Get("/:id/reviews", customer.GetListingReviews)

	category := app.Group("/api/categories")
	category.Get("/", controllers.GetAllCategories)
	category.Get("/:id/listings", controllers.GetCategoryListings)
}
