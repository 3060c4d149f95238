package customer_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/routes"
)

func setupReviewApp(t *testing.T) *fiber.App {
	t.Helper()
	app := setupApp(t)
	routes.SetupCustomerRoutes(app)
	return app
}

func createBookingWithStatus(t *testing.T, customer models.User, provider models.ServiceProvider, listing models.ServiceListing, status models.BookingStatus) models.Booking {
	t.Helper()
	booking := models.Booking{
		CustomerID:        customer.ID,
		ServiceProviderID: provider.ID,
		ServiceListingID:  listing.ID,
		ServiceDateTime:   time.Now().Add(-24 * time.Hour),
		TotalAmount:       listing.ServicePrice,
		BookingStatus:     status,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}

func TestCreateReviewMarksBookingReviewed(t *testing.T) {
	app := setupReviewApp(t)
	customer := createUser(t, "Alice", "alice@example.com", "customer")
	providerUser := createUser(t, "Bob", "bob@example.com", "provider")
	provider := createProvider(t, providerUser)
	listing := createListing(t, provider, 120, true)
	booking := createBookingWithStatus(t, customer, provider, listing, models.StatusCompleted)

	resp := doRequest(t, app, http.MethodPost, "/api/reviews", authToken(t, customer, "customer"), map[string]interface{}{
		"booking_id": booking.ID,
		"rating":     4.5,
		"comment":    "Quick and tidy",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if uint(body["service_provider_id"].(float64)) != provider.ID {
		t.Errorf("expected provider %d on review, got %v", provider.ID, body["service_provider_id"])
	}
	if uint(body["service_listing_id"].(float64)) != listing.ID {
		t.Errorf("expected listing %d on review, got %v", listing.ID, body["service_listing_id"])
	}

	var stored models.Booking
	if err := db.DB.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if !stored.IsReviewed {
		t.Error("expected booking to be marked reviewed")
	}
}

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	app := setupReviewApp(t)
	customer := createUser(t, "Alice", "alice@example.com", "customer")
	providerUser := createUser(t, "Bob", "bob@example.com", "provider")
	provider := createProvider(t, providerUser)
	listing := createListing(t, provider, 120, true)
	booking := createBookingWithStatus(t, customer, provider, listing, models.StatusPending)

	resp := doRequest(t, app, http.MethodPost, "/api/reviews", authToken(t, customer, "customer"), map[string]interface{}{
		"booking_id": booking.ID,
		"rating":     5,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Only completed bookings can be reviewed" {
		t.Errorf("unexpected error: %v", body["error"])
	}

	var stored models.Booking
	if err := db.DB.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if stored.IsReviewed {
		t.Error("pending booking must not be marked reviewed")
	}
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	app := setupReviewApp(t)
	customer := createUser(t, "Alice", "alice@example.com", "customer")
	providerUser := createUser(t, "Bob", "bob@example.com", "provider")
	provider := createProvider(t, providerUser)
	listing := createListing(t, provider, 120, true)
	booking := createBookingWithStatus(t, customer, provider, listing, models.StatusCompleted)

	payload := map[string]interface{}{
		"booking_id": booking.ID,
		"rating":     4,
	}
	resp := doRequest(t, app, http.MethodPost, "/api/reviews", authToken(t, customer, "customer"), payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on first review, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/reviews", authToken(t, customer, "customer"), payload)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on second review, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var count int64
	db.DB.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected a single review, found %d", count)
	}
}

func TestCreateReviewOnlyForOwnBooking(t *testing.T) {
	app := setupReviewApp(t)
	alice := createUser(t, "Alice", "alice@example.com", "customer")
	mallory := createUser(t, "Mallory", "mallory@example.com", "customer")
	providerUser := createUser(t, "Bob", "bob@example.com", "provider")
	provider := createProvider(t, providerUser)
	listing := createListing(t, provider, 120, true)
	booking := createBookingWithStatus(t, alice, provider, listing, models.StatusCompleted)

	resp := doRequest(t, app, http.MethodPost, "/api/reviews", authToken(t, mallory, "customer"), map[string]interface{}{
		"booking_id": booking.ID,
		"rating":     1,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for someone else's booking, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
