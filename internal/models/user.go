package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	UserType      string         `gorm:"type:varchar(50);not null" json:"user_type"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber string         `gorm:"type:varchar(20)" json:"contact_number"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	Address       string         `gorm:"type:text" json:"address"`
	ProofType     string         `gorm:"type:varchar(50)" json:"proof_type"`
	ProofNumber   string         `gorm:"type:varchar(100)" json:"proof_number"`
	Username      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash  string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Requests  []Request  `gorm:"foreignKey:UserID" json:"-"`
	Feedbacks []Feedback `gorm:"foreignKey:UserID" json:"-"`
}
