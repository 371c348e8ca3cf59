package repository

import (
	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)
}

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	// FindByID finds an admin by ID
	FindByID(id uint64) (*models.Admin, error)

	// FindByUsername finds an admin by username
	FindByUsername(username string) (*models.Admin, error)
}

// DonorRepository defines the interface for donor data access
type DonorRepository interface {
	// FindByID finds a donor by ID
	FindByID(id uint64) (*models.Donor, error)

	// List returns all donors
	List() ([]models.Donor, error)
}

// FoodRepository defines the interface for food item data access
type FoodRepository interface {
	// FindByID finds a food item by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.FoodItem, error)

	// ListAvailable returns food items still open for requests, newest first,
	// with donor information preloaded
	ListAvailable() ([]models.FoodItem, error)
}

// RequestFilter holds filtering options for listing requests
type RequestFilter struct {
	Status   *models.RequestStatus
	UserID   *uint64
	Page     int
	PageSize int
}

// RequestRepository defines the interface for donation request data access
type RequestRepository interface {
	// Create creates a new request
	Create(request *models.Request) error

	// FindByID finds a request by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Request, error)

	// List retrieves requests with filtering and pagination, newest first
	List(filter RequestFilter) ([]models.Request, int64, error)

	// Update updates a request
	Update(request *models.Request) error
}

// VolunteerRepository defines the interface for volunteer data access
type VolunteerRepository interface {
	// Create creates a new volunteer
	Create(volunteer *models.Volunteer) error

	// FindByID finds a volunteer by ID
	FindByID(id uint64) (*models.Volunteer, error)

	// List returns all volunteers
	List() ([]models.Volunteer, error)
}

// DeliveryRepository defines the interface for delivery data access
type DeliveryRepository interface {
	// CreateForAssignment creates the delivery and advances the linked
	// request and food item within a single transaction.
	CreateForAssignment(delivery *models.Delivery, request *models.Request, food *models.FoodItem) error

	// FindByID finds a delivery by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Delivery, error)

	// FindByReqID finds the delivery for a request
	FindByReqID(reqID uint64) (*models.Delivery, error)

	// List returns all deliveries ordered by pickup time, newest first
	List(preload ...string) ([]models.Delivery, error)

	// Update updates a delivery
	Update(delivery *models.Delivery) error

	// MarkDelivered stamps the delivery and cascades the request status
	// within a single transaction.
	MarkDelivered(delivery *models.Delivery, request *models.Request) error
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	// Create appends a feedback entry
	Create(feedback *models.Feedback) error

	// ListByDonor returns feedback for a donor, newest first
	ListByDonor(donorID uint64) ([]models.Feedback, error)
}
