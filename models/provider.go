package models

import (
	"gorm.io/gorm"
)

// ServiceProvider links a user account to its provider profile. Listings and
// bookings reference the provider, not the user, so the profile has to exist
// before a user can act as a provider.
type ServiceProvider struct {
	gorm.Model
	UserID         uint    `json:"user_id" gorm:"uniqueIndex"`
	User           User    `json:"user" gorm:"foreignKey:UserID"`
	BusinessName   string  `json:"business_name"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	PhoneNumber    string  `json:"phone_number"`
	IsVerified     bool    `json:"is_verified" gorm:"default:false"`
	CommissionRate float64 `json:"commission_rate" gorm:"default:10"`
}
