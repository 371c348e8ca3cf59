package dto

import (
	"time"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// RequestDTO represents a donation request in API responses
type RequestDTO struct {
	ID          uint64               `json:"id"`
	UserID      uint64               `json:"user_id"`
	FoodID      uint64               `json:"food_id"`
	ProofFile   string               `json:"proof_file,omitempty"`
	RequestDate time.Time            `json:"request_date"`
	Status      models.RequestStatus `json:"status"`
	Verified    bool                 `json:"verified"`
	User        *UserDTO             `json:"user,omitempty"`
	FoodItem    *FoodItemDTO         `json:"food_item,omitempty"`
}

// DeliveryDTO represents a delivery in API responses
type DeliveryDTO struct {
	ID           uint64                `json:"id"`
	ReqID        uint64                `json:"req_id"`
	VolID        uint64                `json:"vol_id"`
	PickupTime   time.Time             `json:"pickup_time"`
	DeliveryTime *time.Time            `json:"delivery_time"`
	Status       models.DeliveryStatus `json:"status"`
	Request      *RequestDTO           `json:"request,omitempty"`
	Volunteer    *VolunteerDTO         `json:"volunteer,omitempty"`
}

// FeedbackDTO represents a feedback entry in API responses
type FeedbackDTO struct {
	ID       uint64    `json:"id"`
	UserID   uint64    `json:"user_id"`
	DonorID  uint64    `json:"donor_id"`
	Rating   int       `json:"rating"`
	Comments string    `json:"comments"`
	Date     time.Time `json:"date"`
}

// ToRequestDTO converts a Request model to RequestDTO
func ToRequestDTO(request models.Request) RequestDTO {
	dto := RequestDTO{
		ID:          request.ID,
		UserID:      request.UserID,
		FoodID:      request.FoodID,
		ProofFile:   request.ProofFile,
		RequestDate: request.RequestDate,
		Status:      request.Status,
		Verified:    request.Verified,
	}

	// Include requester if preloaded
	if request.User.ID != 0 {
		user := ToUserDTO(request.User)
		dto.User = &user
	}

	// Include food item if preloaded
	if request.FoodItem.ID != 0 {
		food := ToFoodItemDTO(request.FoodItem)
		dto.FoodItem = &food
	}

	return dto
}

// ToDeliveryDTO converts a Delivery model to DeliveryDTO
func ToDeliveryDTO(delivery models.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:           delivery.ID,
		ReqID:        delivery.ReqID,
		VolID:        delivery.VolID,
		PickupTime:   delivery.PickupTime,
		DeliveryTime: delivery.DeliveryTime,
		Status:       delivery.Status,
	}

	if delivery.Request.ID != 0 {
		request := ToRequestDTO(delivery.Request)
		dto.Request = &request
	}

	if delivery.Volunteer.ID != 0 {
		volunteer := ToVolunteerDTO(delivery.Volunteer)
		dto.Volunteer = &volunteer
	}

	return dto
}

// ToFeedbackDTO converts a Feedback model to FeedbackDTO
func ToFeedbackDTO(feedback models.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:       feedback.ID,
		UserID:   feedback.UserID,
		DonorID:  feedback.DonorID,
		Rating:   feedback.Rating,
		Comments: feedback.Comments,
		Date:     feedback.Date,
	}
}
