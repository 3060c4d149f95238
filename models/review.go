package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating            float64         `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment           string          `json:"comment"`
	CustomerID        uint            `json:"customer_id"`
	Customer          User            `json:"customer" gorm:"foreignKey:CustomerID"`
	ServiceProviderID uint            `json:"service_provider_id"`
	ServiceProvider   ServiceProvider `json:"service_provider" gorm:"foreignKey:ServiceProviderID"`
	ServiceListingID  uint            `json:"service_listing_id"`
	ServiceListing    ServiceListing  `json:"service_listing" gorm:"foreignKey:ServiceListingID"`
	BookingID         uint            `json:"booking_id"`
}

// BeforeCreate hook to validate rating
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	// Ensure rating is between 1.0 and 5.0
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}

	return nil
}

// HasExistingReview checks if the customer has already reviewed this booking
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND booking_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.BookingID).
		Count(&count).Error

	return count > 0, err
}
