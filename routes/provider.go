package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/controllers/provider"
	"github.com/harshkathrotiya/fixlyweb-sub001/middleware"
)

// SetupProviderRoutes configures all provider related routes
func SetupProviderRoutes(app *fiber.App) {
	providerGroup := app.Group("/api/provider", middleware.Protected(), middleware.RequireRole("provider"))

	providerGroup.Get("/listings", provider.GetMyListings)
	providerGroup.Post("/listings", provider.CreateListing)
	providerGroup.Put("/listings/:id", provider.UpdateListing)
	providerGroup.Delete("/listings/:id", provider.DeleteListing)
	providerGroup.Post("/listings/:id/image", provider.UploadListingImage)

	providerGroup.Get("/dashboard", provider.GetDashboardOverview)
	providerGroup.Get("/dashboard/recent", provider.GetRecentBookings)

	providerGroup.Get("/profile", provider.GetProviderProfile)
	providerGroup.Patch("/profile", provider.UpdateProviderProfile)
}
