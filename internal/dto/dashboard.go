package dto

import (
	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/utils"
)

// AdminDashboardResponse aggregates everything the admin view shows
type AdminDashboardResponse struct {
	Requests   []RequestDTO             `json:"requests"`
	Pagination utils.PaginationResponse `json:"pagination"`
	Volunteers []VolunteerDTO           `json:"volunteers"`
	Users      []UserDTO                `json:"users"`
	Donors     []DonorDTO               `json:"donors"`
}

// ToAdminDashboardResponse builds the admin dashboard payload
func ToAdminDashboardResponse(
	requests []models.Request,
	totalRequests int64,
	params utils.PaginationParams,
	volunteers []models.Volunteer,
	users []models.User,
	donors []models.Donor,
) AdminDashboardResponse {
	requestDTOs := make([]RequestDTO, len(requests))
	for i, r := range requests {
		requestDTOs[i] = ToRequestDTO(r)
	}

	volunteerDTOs := make([]VolunteerDTO, len(volunteers))
	for i, v := range volunteers {
		volunteerDTOs[i] = ToVolunteerDTO(v)
	}

	userDTOs := make([]UserDTO, len(users))
	for i, u := range users {
		userDTOs[i] = ToUserDTO(u)
	}

	donorDTOs := make([]DonorDTO, len(donors))
	for i, d := range donors {
		donorDTOs[i] = ToDonorDTO(d)
	}

	return AdminDashboardResponse{
		Requests: requestDTOs,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: totalRequests,
		},
		Volunteers: volunteerDTOs,
		Users:      userDTOs,
		Donors:     donorDTOs,
	}
}
