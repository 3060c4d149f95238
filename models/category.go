package models

import (
	"gorm.io/gorm"
)

type ServiceCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
