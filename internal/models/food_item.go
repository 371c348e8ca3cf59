package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodStatus string

const (
	FoodStatusAvailable FoodStatus = "Available"
	FoodStatusAssigned  FoodStatus = "Assigned"
	FoodStatusExpired   FoodStatus = "Expired"
)

type FoodItem struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	DonorID    uint64         `gorm:"not null;index" json:"donor_id"`
	FoodName   string         `gorm:"type:varchar(255);not null" json:"food_name"`
	Quantity   string         `gorm:"type:varchar(100)" json:"quantity"`
	ExpiryDate *time.Time     `json:"expiry_date"`
	Status     FoodStatus     `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Donor    Donor     `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Requests []Request `gorm:"foreignKey:FoodID" json:"-"`
}
