package dto

import "github.com/divyanshukaintura04-web/food-donation-system/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID            uint64 `json:"id"`
	UserType      string `json:"user_type"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Username      string `json:"username"`
}

// AdminDTO represents an admin in API responses
type AdminDTO struct {
	ID       uint64           `json:"id"`
	Username string           `json:"username"`
	Role     models.AdminRole `json:"role"`
}

// DonorDTO represents a donor in API responses
type DonorDTO struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// VolunteerDTO represents a volunteer in API responses
type VolunteerDTO struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	NGOID         string `json:"ngo_id,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		UserType:      user.UserType,
		Name:          user.Name,
		ContactNumber: user.ContactNumber,
		Email:         user.Email,
		Address:       user.Address,
		Username:      user.Username,
	}
}

// ToAdminDTO converts an Admin model to AdminDTO
func ToAdminDTO(admin models.Admin) AdminDTO {
	return AdminDTO{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}
}

// ToDonorDTO converts a Donor model to DonorDTO
func ToDonorDTO(donor models.Donor) DonorDTO {
	return DonorDTO{
		ID:            donor.ID,
		Name:          donor.Name,
		ContactNumber: donor.ContactNumber,
		Email:         donor.Email,
		Address:       donor.Address,
	}
}

// ToVolunteerDTO converts a Volunteer model to VolunteerDTO
func ToVolunteerDTO(volunteer models.Volunteer) VolunteerDTO {
	return VolunteerDTO{
		ID:            volunteer.ID,
		Name:          volunteer.Name,
		ContactNumber: volunteer.ContactNumber,
		NGOID:         volunteer.NGOID,
	}
}
