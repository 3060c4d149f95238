package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/routes"
	"gorm.io/gorm"
)

const testSecret = "test_secret"

type fixture struct {
	app          *fiber.App
	customer     models.User
	providerUser models.User
	provider     models.ServiceProvider
	listing      models.ServiceListing
}

func setup(t *testing.T) *fixture {
	t.Helper()
	os.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{}, &models.Role{}, &models.ServiceProvider{},
		&models.ServiceCategory{}, &models.ServiceListing{},
		&models.Booking{}, &models.Review{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	f := &fixture{app: fiber.New()}
	routes.SetupBookingRoutes(f.app)

	f.customer = models.User{Name: "Alice", Email: "alice@example.com", Password: "x"}
	f.providerUser = models.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
	for _, u := range []*models.User{&f.customer, &f.providerUser} {
		if err := db.DB.Create(u).Error; err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	f.provider = models.ServiceProvider{UserID: f.providerUser.ID, BusinessName: "Bob Services"}
	if err := db.DB.Create(&f.provider).Error; err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	f.listing = models.ServiceListing{Title: "Pipe Repair", ServicePrice: 150, IsActive: true, ServiceProviderID: f.provider.ID}
	if err := db.DB.Create(&f.listing).Error; err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}

	return f
}

func (f *fixture) createBooking(t *testing.T, status models.BookingStatus) models.Booking {
	t.Helper()
	booking := models.Booking{
		CustomerID:        f.customer.ID,
		ServiceProviderID: f.provider.ID,
		ServiceListingID:  f.listing.ID,
		ServiceDateTime:   time.Now().Add(24 * time.Hour),
		TotalAmount:       f.listing.ServicePrice,
		BookingStatus:     status,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}

func token(t *testing.T, user models.User, roleName string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": roleName,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func putStatus(t *testing.T, app *fiber.App, bookingID, authToken string, body map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPut, "/api/bookings/"+bookingID+"/status", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	decoded := make(map[string]interface{})
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp, decoded
}

func (f *fixture) storedStatus(t *testing.T, id uint) models.BookingStatus {
	t.Helper()
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	return booking.BookingStatus
}

func TestUpdateStatusMissingStatus(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusPending)

	resp, body := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.customer, "customer"), map[string]interface{}{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["message"] != "Please provide a status" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusPending {
		t.Errorf("stored status changed to %q", got)
	}
}

func TestUpdateStatusBookingNotFound(t *testing.T) {
	f := setup(t)

	resp, body := putStatus(t, f.app, "nonexistent123", token(t, f.providerUser, "provider"), map[string]interface{}{
		"status": "Completed",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["message"] != "Booking not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestProviderConfirmsPendingBooking(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusPending)

	resp, body := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.providerUser, "provider"), map[string]interface{}{
		"status": "Confirmed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, body)
	}
	if body["booking_status"] != string(models.StatusConfirmed) {
		t.Errorf("expected Confirmed, got %v", body["booking_status"])
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusConfirmed {
		t.Errorf("stored status is %q", got)
	}
}

func TestProviderCompletesConfirmedBooking(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusConfirmed)

	resp, _ := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.providerUser, "provider"), map[string]interface{}{
		"status": "Completed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusCompleted {
		t.Errorf("stored status is %q", got)
	}
}

func TestCustomerCancelsOwnBooking(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusPending)

	resp, _ := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.customer, "customer"), map[string]interface{}{
		"status": "Cancelled",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusCancelled {
		t.Errorf("stored status is %q", got)
	}
}

func TestCustomerCannotConfirm(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusPending)

	resp, _ := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.customer, "customer"), map[string]interface{}{
		"status": "Confirmed",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusPending {
		t.Errorf("stored status changed to %q", got)
	}
}

func TestStrangerCannotTouchBooking(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusPending)

	stranger := models.User{Name: "Mallory", Email: "mallory@example.com", Password: "x"}
	if err := db.DB.Create(&stranger).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	resp, _ := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, stranger, "customer"), map[string]interface{}{
		"status": "Cancelled",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestTerminalStatusIsFrozen(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusCompleted)

	resp, body := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.providerUser, "provider"), map[string]interface{}{
		"status": "Confirmed",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["message"] != "Invalid status update" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusCompleted {
		t.Errorf("stored status changed to %q", got)
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	f := setup(t)
	booking := f.createBooking(t, models.StatusPending)

	resp, _ := putStatus(t, f.app, fmt.Sprint(booking.ID), token(t, f.providerUser, "provider"), map[string]interface{}{
		"status": "Shipped",
	})
	if resp.StatusCode != http.StatusForbidden {
		// Providers may only send Confirmed/Rejected/Completed, so an unknown
		// value trips the role gate before the transition table
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if got := f.storedStatus(t, booking.ID); got != models.StatusPending {
		t.Errorf("stored status changed to %q", got)
	}
}
