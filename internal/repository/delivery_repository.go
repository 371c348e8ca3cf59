package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

var (
	// ErrCreateDelivery is returned when inserting the delivery fails inside the assignment transaction.
	ErrCreateDelivery = errors.New("delivery repository: create delivery failed")
	// ErrUpdateRequest is returned when advancing the request fails inside a workflow transaction.
	ErrUpdateRequest = errors.New("delivery repository: update request failed")
	// ErrUpdateFoodItem is returned when advancing the food item fails inside the assignment transaction.
	ErrUpdateFoodItem = errors.New("delivery repository: update food item failed")
	// ErrUpdateDelivery is returned when stamping the delivery fails inside the delivered transaction.
	ErrUpdateDelivery = errors.New("delivery repository: update delivery failed")
)

// GormDeliveryRepository is a GORM implementation of DeliveryRepository
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new DeliveryRepository
func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// CreateForAssignment creates the delivery and advances the linked request
// and food item atomically. A partial failure rolls everything back.
func (r *GormDeliveryRepository) CreateForAssignment(delivery *models.Delivery, request *models.Request, food *models.FoodItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(delivery).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateDelivery, err)
		}

		if err := tx.Save(request).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateRequest, err)
		}

		if err := tx.Save(food).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateFoodItem, err)
		}

		return nil
	})
}

// FindByID finds a delivery by ID with optional preloading
func (r *GormDeliveryRepository) FindByID(id uint64, preload ...string) (*models.Delivery, error) {
	var delivery models.Delivery
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&delivery, id).Error; err != nil {
		return nil, err
	}

	return &delivery, nil
}

// FindByReqID finds the delivery for a request
func (r *GormDeliveryRepository) FindByReqID(reqID uint64) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.Where("req_id = ?", reqID).First(&delivery).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

// List returns all deliveries ordered by pickup time, newest first
func (r *GormDeliveryRepository) List(preload ...string) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Order("pickup_time DESC").Find(&deliveries).Error; err != nil {
		return nil, err
	}

	return deliveries, nil
}

// Update updates a delivery
func (r *GormDeliveryRepository) Update(delivery *models.Delivery) error {
	return r.db.Save(delivery).Error
}

// MarkDelivered stamps the delivery and cascades the request status atomically.
func (r *GormDeliveryRepository) MarkDelivered(delivery *models.Delivery, request *models.Request) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(delivery).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateDelivery, err)
		}

		if err := tx.Save(request).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateRequest, err)
		}

		return nil
	})
}
