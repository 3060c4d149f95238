package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
	StatusRejected  BookingStatus = "Rejected"
)

type Booking struct {
	gorm.Model
	CustomerID          uint            `json:"customer_id"`
	Customer            User            `json:"customer" gorm:"foreignKey:CustomerID"`
	ServiceProviderID   uint            `json:"service_provider_id"`
	ServiceProvider     ServiceProvider `json:"service_provider" gorm:"foreignKey:ServiceProviderID"`
	ServiceListingID    uint            `json:"service_listing_id"`
	ServiceListing      ServiceListing  `json:"service_listing" gorm:"foreignKey:ServiceListingID"`
	ServiceDateTime     time.Time       `json:"service_date_time"`
	SpecialInstructions string          `json:"special_instructions"`
	TotalAmount         float64         `json:"total_amount"`
	BookingStatus       BookingStatus   `json:"booking_status"`
	IsReviewed          bool            `json:"is_reviewed" gorm:"default:false"`
}

// IsValidStatus reports whether s is one of the known booking statuses.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingStatus == "" {
		b.BookingStatus = StatusPending
	}
	return nil
}

// CanTransitionTo checks the transition table without touching the database.
// Pending may move to Confirmed, Cancelled or Rejected; Confirmed may move to
// Completed or Cancelled; Completed, Cancelled and Rejected are terminal.
func (b *Booking) CanTransitionTo(newStatus BookingStatus) error {
	if !IsValidStatus(newStatus) {
		return fmt.Errorf("unknown booking status %q", newStatus)
	}
	switch b.BookingStatus {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled && newStatus != StatusRejected {
			return fmt.Errorf("invalid transition from %s to %s", StatusPending, newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from %s to %s", StatusConfirmed, newStatus)
		}
	case StatusCompleted, StatusCancelled, StatusRejected:
		return fmt.Errorf("no transitions allowed from %s", b.BookingStatus)
	}
	return nil
}

// UpdateStatus applies a legal status transition and persists it. Only the
// status column changes; amount and schedule stay as created.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := b.CanTransitionTo(newStatus); err != nil {
		return err
	}

	b.BookingStatus = newStatus
	if err := tx.Model(b).Update("booking_status", newStatus).Error; err != nil {
		return err
	}

	return nil
}
