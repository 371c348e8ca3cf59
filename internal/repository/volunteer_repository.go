package repository

import (
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// GormVolunteerRepository is a GORM implementation of VolunteerRepository
type GormVolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &GormVolunteerRepository{db: db}
}

// Create creates a new volunteer
func (r *GormVolunteerRepository) Create(volunteer *models.Volunteer) error {
	return r.db.Create(volunteer).Error
}

// FindByID finds a volunteer by ID
func (r *GormVolunteerRepository) FindByID(id uint64) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.First(&volunteer, id).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// List returns all volunteers
func (r *GormVolunteerRepository) List() ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	if err := r.db.Order("id ASC").Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}
