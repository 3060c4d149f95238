package models

import (
	"gorm.io/gorm"
)

type ServiceListing struct {
	gorm.Model
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	ServicePrice      float64         `json:"service_price"`
	ImageURL          string          `json:"image_url"`
	IsActive          bool            `json:"is_active" gorm:"default:true"`
	CategoryID        uint            `json:"category_id"`
	Category          ServiceCategory `json:"category" gorm:"foreignKey:CategoryID"`
	ServiceProviderID uint            `json:"service_provider_id"`
	ServiceProvider   ServiceProvider `json:"service_provider" gorm:"foreignKey:ServiceProviderID"`
}
