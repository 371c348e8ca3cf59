package services

import (
	"fmt"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/repository"
)

// DashboardService composes the read-only views shown per role.
type DashboardService struct {
	foodRepo      repository.FoodRepository
	requestRepo   repository.RequestRepository
	volunteerRepo repository.VolunteerRepository
	deliveryRepo  repository.DeliveryRepository
	userRepo      repository.UserRepository
	donorRepo     repository.DonorRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	foodRepo repository.FoodRepository,
	requestRepo repository.RequestRepository,
	volunteerRepo repository.VolunteerRepository,
	deliveryRepo repository.DeliveryRepository,
	userRepo repository.UserRepository,
	donorRepo repository.DonorRepository,
) *DashboardService {
	return &DashboardService{
		foodRepo:      foodRepo,
		requestRepo:   requestRepo,
		volunteerRepo: volunteerRepo,
		deliveryRepo:  deliveryRepo,
		userRepo:      userRepo,
		donorRepo:     donorRepo,
	}
}

// AvailableFood returns food items open for requests with donor info.
func (s *DashboardService) AvailableFood() ([]models.FoodItem, error) {
	items, err := s.foodRepo.ListAvailable()
	if err != nil {
		return nil, fmt.Errorf("failed to list available food: %w", err)
	}
	return items, nil
}

// AdminOverview aggregates everything the admin dashboard shows.
type AdminOverview struct {
	Requests      []models.Request
	TotalRequests int64
	Volunteers    []models.Volunteer
	Users         []models.User
	Donors        []models.Donor
}

// AdminDashboard returns requests (paginated, newest first, with requester,
// food and donor loaded) plus the volunteer, user and donor listings.
func (s *DashboardService) AdminDashboard(page, pageSize int) (*AdminOverview, error) {
	requests, total, err := s.requestRepo.List(repository.RequestFilter{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	volunteers, err := s.volunteerRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}

	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	donors, err := s.donorRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}

	return &AdminOverview{
		Requests:      requests,
		TotalRequests: total,
		Volunteers:    volunteers,
		Users:         users,
		Donors:        donors,
	}, nil
}

// VolunteerDashboard returns deliveries with their request and requester
// loaded, newest pickup first.
func (s *DashboardService) VolunteerDashboard() ([]models.Delivery, error) {
	deliveries, err := s.deliveryRepo.List("Request", "Request.User", "Volunteer")
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return deliveries, nil
}
