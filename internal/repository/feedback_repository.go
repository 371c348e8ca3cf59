package repository

import (
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// GormFeedbackRepository is a GORM implementation of FeedbackRepository
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Create appends a feedback entry
func (r *GormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// ListByDonor returns feedback for a donor, newest first
func (r *GormFeedbackRepository) ListByDonor(donorID uint64) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := r.db.Preload("User").
		Where("donor_id = ?", donorID).
		Order("date DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
