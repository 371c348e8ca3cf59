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
	ErrDonorNotFound = errors.New("donor not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// FeedbackService handles donor feedback. Entries are append-only; nothing
// checks that the submitting user completed a delivery for the donor.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	donorRepo    repository.DonorRepository
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, donorRepo repository.DonorRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		donorRepo:    donorRepo,
	}
}

// SubmitFeedbackInput represents a user's feedback for a donor.
type SubmitFeedbackInput struct {
	UserID   uint64
	DonorID  uint64
	Rating   int
	Comments string
}

// SubmitFeedback appends a feedback entry for a donor.
func (s *FeedbackService) SubmitFeedback(input SubmitFeedbackInput) (*models.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.donorRepo.FindByID(input.DonorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to find donor: %w", err)
	}

	feedback := &models.Feedback{
		UserID:   input.UserID,
		DonorID:  input.DonorID,
		Rating:   input.Rating,
		Comments: input.Comments,
		Date:     time.Now(),
	}

	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}

// ListDonorFeedback returns feedback for a donor, newest first.
func (s *FeedbackService) ListDonorFeedback(donorID uint64) ([]models.Feedback, error) {
	if _, err := s.donorRepo.FindByID(donorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to find donor: %w", err)
	}

	feedbacks, err := s.feedbackRepo.ListByDonor(donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	return feedbacks, nil
}
