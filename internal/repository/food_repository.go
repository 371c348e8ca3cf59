package repository

import (
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// GormFoodRepository is a GORM implementation of FoodRepository
type GormFoodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new FoodRepository
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &GormFoodRepository{db: db}
}

// FindByID finds a food item by ID with optional preloading
func (r *GormFoodRepository) FindByID(id uint64, preload ...string) (*models.FoodItem, error) {
	var food models.FoodItem
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&food, id).Error; err != nil {
		return nil, err
	}

	return &food, nil
}

// ListAvailable returns available food items with donor information, newest first
func (r *GormFoodRepository) ListAvailable() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.db.Preload("Donor").
		Where("status = ?", models.FoodStatusAvailable).
		Order("id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
