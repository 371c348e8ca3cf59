package models

import "time"

type Volunteer struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber string    `gorm:"type:varchar(20);not null" json:"contact_number"`
	NGOID         string    `gorm:"type:varchar(100)" json:"ngo_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Deliveries []Delivery `gorm:"foreignKey:VolID" json:"-"`
}
