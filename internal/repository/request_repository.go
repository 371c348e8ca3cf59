package repository

import (
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// GormRequestRepository is a GORM implementation of RequestRepository
type GormRequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &GormRequestRepository{db: db}
}

// Create creates a new request
func (r *GormRequestRepository) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

// FindByID finds a request by ID with optional preloading
func (r *GormRequestRepository) FindByID(id uint64, preload ...string) (*models.Request, error) {
	var request models.Request
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&request, id).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// List retrieves requests with filtering and pagination, newest first
func (r *GormRequestRepository) List(filter RequestFilter) ([]models.Request, int64, error) {
	var requests []models.Request

	query := r.db.Model(&models.Request{})

	if filter.Status != nil {
		query = query.Where("requests.status = ?", *filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("requests.user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("requests.request_date DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.
		Preload("User").
		Preload("FoodItem").
		Preload("FoodItem.Donor").
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// Update updates a request
func (r *GormRequestRepository) Update(request *models.Request) error {
	return r.db.Save(request).Error
}
