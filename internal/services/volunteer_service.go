package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/repository"
)

var (
	ErrVolunteerNameRequired    = errors.New("volunteer name is required")
	ErrVolunteerContactRequired = errors.New("volunteer contact number is required")
)

// VolunteerService handles volunteer management.
type VolunteerService struct {
	volunteerRepo repository.VolunteerRepository
}

// NewVolunteerService creates a new VolunteerService.
func NewVolunteerService(volunteerRepo repository.VolunteerRepository) *VolunteerService {
	return &VolunteerService{volunteerRepo: volunteerRepo}
}

// AddVolunteerInput represents input for registering a volunteer.
type AddVolunteerInput struct {
	Name          string
	ContactNumber string
	NGOID         string
}

// AddVolunteer registers a new delivery volunteer.
func (s *VolunteerService) AddVolunteer(input AddVolunteerInput) (*models.Volunteer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrVolunteerNameRequired
	}
	if strings.TrimSpace(input.ContactNumber) == "" {
		return nil, ErrVolunteerContactRequired
	}

	volunteer := &models.Volunteer{
		Name:          name,
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		NGOID:         strings.TrimSpace(input.NGOID),
	}

	if err := s.volunteerRepo.Create(volunteer); err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}

	return volunteer, nil
}
