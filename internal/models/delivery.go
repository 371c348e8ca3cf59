package models

import (
	"fmt"
	"time"
)

type DeliveryStatus string

const (
	DeliveryStatusPicked    DeliveryStatus = "Picked"
	DeliveryStatusInTransit DeliveryStatus = "InTransit"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
)

// deliveryTransitions is forward-only; Delivered is terminal.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPicked:    {DeliveryStatusInTransit, DeliveryStatusDelivered},
	DeliveryStatusInTransit: {DeliveryStatusDelivered},
}

// CanTransition reports whether moving from s to next is permitted.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseDeliveryStatus validates a status value supplied at the boundary
// against the closed enumeration.
func ParseDeliveryStatus(value string) (DeliveryStatus, error) {
	switch DeliveryStatus(value) {
	case DeliveryStatusPicked, DeliveryStatusInTransit, DeliveryStatusDelivered:
		return DeliveryStatus(value), nil
	}
	return "", fmt.Errorf("unknown delivery status %q", value)
}

type Delivery struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	ReqID        uint64         `gorm:"uniqueIndex;not null" json:"req_id"`
	VolID        uint64         `gorm:"not null;index" json:"vol_id"`
	PickupTime   time.Time      `gorm:"not null" json:"pickup_time"`
	DeliveryTime *time.Time     `json:"delivery_time"`
	Status       DeliveryStatus `gorm:"type:varchar(20);not null;default:'Picked'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relations
	Request   Request   `gorm:"foreignKey:ReqID" json:"request,omitempty"`
	Volunteer Volunteer `gorm:"foreignKey:VolID" json:"volunteer,omitempty"`
}
