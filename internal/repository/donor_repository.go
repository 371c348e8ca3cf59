package repository

import (
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// GormDonorRepository is a GORM implementation of DonorRepository
type GormDonorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new DonorRepository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &GormDonorRepository{db: db}
}

// FindByID finds a donor by ID
func (r *GormDonorRepository) FindByID(id uint64) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.First(&donor, id).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// List returns all donors
func (r *GormDonorRepository) List() ([]models.Donor, error) {
	var donors []models.Donor
	if err := r.db.Order("id ASC").Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}
