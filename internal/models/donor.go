package models

import "time"

type Donor struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber string    `gorm:"type:varchar(20)" json:"contact_number"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Address       string    `gorm:"type:text" json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	FoodItems []FoodItem `gorm:"foreignKey:DonorID" json:"food_items,omitempty"`
	Feedbacks []Feedback `gorm:"foreignKey:DonorID" json:"-"`
}
