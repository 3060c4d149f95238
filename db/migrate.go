package db

import (
	"fmt"
	"log"

	"github.com/harshkathrotiya/fixlyweb-sub001/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.ServiceProvider{},
		&models.ServiceCategory{},
		&models.ServiceListing{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaults()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDefaults creates the roles and starter categories the app expects.
func seedDefaults() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "provider", Description: "Service provider who can manage listings and bookings"},
		{Name: "customer", Description: "Customer who can book services"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	categories := []models.ServiceCategory{
		{Name: "Cleaning", Description: "Home and office cleaning services", IsActive: true},
		{Name: "Plumbing", Description: "Plumbing repair and installation", IsActive: true},
		{Name: "Electrical", Description: "Electrical repair and wiring", IsActive: true},
		{Name: "Painting", Description: "Interior and exterior painting", IsActive: true},
		{Name: "Carpentry", Description: "Furniture and woodwork services", IsActive: true},
	}

	for _, category := range categories {
		var existingCategory models.ServiceCategory
		if DB.Where("name = ?", category.Name).First(&existingCategory).RowsAffected == 0 {
			DB.Create(&category)
		}
	}
}
