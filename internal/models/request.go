package models

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusApproved  RequestStatus = "Approved"
	RequestStatusRejected  RequestStatus = "Rejected"
	RequestStatusAssigned  RequestStatus = "Assigned"
	RequestStatusDelivered RequestStatus = "Delivered"
)

// requestTransitions is the enforced forward-only state machine for a
// request. Rejected and Delivered are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusRejected},
	RequestStatusApproved: {RequestStatusAssigned},
	RequestStatusAssigned: {RequestStatusDelivered},
}

// CanTransition reports whether moving from s to next is permitted.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Request struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	FoodID      uint64         `gorm:"not null;index" json:"food_id"`
	ProofFile   string         `gorm:"type:varchar(255)" json:"proof_file"`
	RequestDate time.Time      `gorm:"not null" json:"request_date"`
	Status      RequestStatus  `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Verified    bool           `gorm:"not null;default:false" json:"verified"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FoodItem FoodItem  `gorm:"foreignKey:FoodID" json:"food_item,omitempty"`
	Delivery *Delivery `gorm:"foreignKey:ReqID" json:"delivery,omitempty"`
}
