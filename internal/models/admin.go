package models

import "time"

type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "SuperAdmin"
	AdminRoleAdmin      AdminRole = "Admin"
)

type Admin struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         AdminRole `gorm:"type:varchar(20);not null;default:'Admin'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
