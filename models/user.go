package models

import (
	"time"
)

type User struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	Name             string           `json:"name"`
	Email            string           `json:"email" gorm:"unique"`
	Password         string           `json:"password,omitempty"`
	PhoneNumber      string           `json:"phone_number"`
	ProfilePicture   string           `json:"profile_picture"`
	IsVerified       bool             `json:"is_verified"`
	RoleID           uint             `json:"role_id"`
	Role             Role             `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	ProviderProfile  *ServiceProvider `json:"provider_profile,omitempty" gorm:"foreignKey:UserID"`
	CustomerBookings []Booking        `json:"customer_bookings,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
