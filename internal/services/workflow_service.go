package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/repository"
)

var (
	ErrFoodNotFound           = errors.New("food item not found")
	ErrFoodNotAvailable       = errors.New("food item is no longer available")
	ErrRequestNotFound        = errors.New("request not found")
	ErrVolunteerNotFound      = errors.New("volunteer not found")
	ErrDeliveryNotFound       = errors.New("delivery not found")
	ErrInvalidAction          = errors.New("action must be approve or reject")
	ErrInvalidTransition      = errors.New("request state does not permit this transition")
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrDeliveryAlreadyExists = errors.New("request already has a delivery")
)

// ReviewAction is the admin decision on a pending request.
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

// ParseReviewAction validates the admin's form input.
func ParseReviewAction(value string) (ReviewAction, error) {
	switch ReviewAction(value) {
	case ReviewActionApprove, ReviewActionReject:
		return ReviewAction(value), nil
	}
	return "", ErrInvalidAction
}

// WorkflowService advances donation requests through their lifecycle:
// Pending -> Approved/Rejected -> Assigned -> Delivered. Every transition is
// checked against the model transition tables before anything is written.
type WorkflowService struct {
	requestRepo   repository.RequestRepository
	foodRepo      repository.FoodRepository
	volunteerRepo repository.VolunteerRepository
	deliveryRepo  repository.DeliveryRepository
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(
	requestRepo repository.RequestRepository,
	foodRepo repository.FoodRepository,
	volunteerRepo repository.VolunteerRepository,
	deliveryRepo repository.DeliveryRepository,
) *WorkflowService {
	return &WorkflowService{
		requestRepo:   requestRepo,
		foodRepo:      foodRepo,
		volunteerRepo: volunteerRepo,
		deliveryRepo:  deliveryRepo,
	}
}

// FoodDetails returns a food item with its donor loaded, for the request form.
func (s *WorkflowService) FoodDetails(foodID uint64) (*models.FoodItem, error) {
	food, err := s.foodRepo.FindByID(foodID, "Donor")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to find food item: %w", err)
	}
	return food, nil
}

// SubmitRequestInput represents a user's claim on a food item.
type SubmitRequestInput struct {
	UserID    uint64
	FoodID    uint64
	ProofFile string
}

// SubmitRequest creates a pending, unverified request for an available food
// item. The item itself stays Available until a volunteer is assigned.
func (s *WorkflowService) SubmitRequest(input SubmitRequestInput) (*models.Request, error) {
	food, err := s.foodRepo.FindByID(input.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to find food item: %w", err)
	}

	if food.Status != models.FoodStatusAvailable {
		return nil, ErrFoodNotAvailable
	}

	request := &models.Request{
		UserID:      input.UserID,
		FoodID:      food.ID,
		ProofFile:   input.ProofFile,
		RequestDate: time.Now(),
		Status:      models.RequestStatusPending,
		Verified:    false,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}

// ReviewRequest applies an admin approve/reject decision to a pending
// request. Approval also flips the verified flag; the food item is left
// untouched either way.
func (s *WorkflowService) ReviewRequest(reqID uint64, action ReviewAction) (*models.Request, error) {
	request, err := s.requestRepo.FindByID(reqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	next := models.RequestStatusApproved
	if action == ReviewActionReject {
		next = models.RequestStatusRejected
	}

	if !request.Status.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	request.Status = next
	if action == ReviewActionApprove {
		request.Verified = true
	}

	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	return request, nil
}

// AssignVolunteerInput pairs an approved request with a volunteer.
type AssignVolunteerInput struct {
	ReqID uint64
	VolID uint64
}

// AssignVolunteer creates the delivery for an approved request and advances
// the request and its food item in one transaction. The request must be
// Approved and the food item still Available; a request that already has a
// delivery cannot be assigned again.
func (s *WorkflowService) AssignVolunteer(input AssignVolunteerInput) (*models.Delivery, error) {
	request, err := s.requestRepo.FindByID(input.ReqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	if !request.Status.CanTransition(models.RequestStatusAssigned) {
		return nil, ErrInvalidTransition
	}

	if _, err := s.volunteerRepo.FindByID(input.VolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer: %w", err)
	}

	if _, err := s.deliveryRepo.FindByReqID(request.ID); err == nil {
		return nil, ErrDeliveryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing delivery: %w", err)
	}

	food, err := s.foodRepo.FindByID(request.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to find food item: %w", err)
	}

	if food.Status != models.FoodStatusAvailable {
		return nil, ErrFoodNotAvailable
	}

	delivery := &models.Delivery{
		ReqID:      request.ID,
		VolID:      input.VolID,
		PickupTime: time.Now(),
		Status:     models.DeliveryStatusPicked,
	}

	request.Status = models.RequestStatusAssigned
	food.Status = models.FoodStatusAssigned

	if err := s.deliveryRepo.CreateForAssignment(delivery, request, food); err != nil {
		return nil, fmt.Errorf("failed to assign volunteer: %w", err)
	}

	return delivery, nil
}

// UpdateDeliveryStatus applies a volunteer's status update. The value is
// validated against the closed enumeration and must move the delivery
// forward. Delivered stamps the delivery time and cascades to the request
// in one transaction.
func (s *WorkflowService) UpdateDeliveryStatus(deliveryID uint64, statusValue string) (*models.Delivery, error) {
	status, err := models.ParseDeliveryStatus(statusValue)
	if err != nil {
		return nil, ErrInvalidDeliveryStatus
	}

	delivery, err := s.deliveryRepo.FindByID(deliveryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("failed to find delivery: %w", err)
	}

	if !delivery.Status.CanTransition(status) {
		return nil, ErrInvalidTransition
	}

	if status != models.DeliveryStatusDelivered {
		delivery.Status = status
		if err := s.deliveryRepo.Update(delivery); err != nil {
			return nil, fmt.Errorf("failed to update delivery: %w", err)
		}
		return delivery, nil
	}

	request, err := s.requestRepo.FindByID(delivery.ReqID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	if !request.Status.CanTransition(models.RequestStatusDelivered) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	delivery.Status = models.DeliveryStatusDelivered
	delivery.DeliveryTime = &now
	request.Status = models.RequestStatusDelivered

	if err := s.deliveryRepo.MarkDelivered(delivery, request); err != nil {
		return nil, fmt.Errorf("failed to mark delivered: %w", err)
	}

	return delivery, nil
}
