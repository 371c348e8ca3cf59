package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/constants"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles signup and login for both principals.
type AuthService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	UserType      string
	Name          string
	ContactNumber string
	Email         string
	Address       string
	ProofType     string
	ProofNumber   string
	Username      string
	Password      string
}

// Signup creates a new user account with a hashed password.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		UserType:      input.UserType,
		Name:          strings.TrimSpace(input.Name),
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
		ProofType:     input.ProofType,
		ProofNumber:   input.ProofNumber,
		Username:      username,
		PasswordHash:  string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique index on username races with the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// LoginUser verifies user credentials and returns the authenticated user.
// Unknown usernames and wrong passwords yield the same error.
func (s *AuthService) LoginUser(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// LoginAdmin verifies admin credentials and returns the authenticated admin.
func (s *AuthService) LoginAdmin(input LoginInput) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
