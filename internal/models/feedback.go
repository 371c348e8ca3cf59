package models

import "time"

type Feedback struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	DonorID   uint64    `gorm:"not null;index" json:"donor_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comments  string    `gorm:"type:text" json:"comments"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Donor Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}
