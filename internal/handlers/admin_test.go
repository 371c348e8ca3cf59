package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
)

func TestAdminDashboard_RequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	w := env.get(t, "/admin/dashboard", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdminDashboard_UserSessionNotEnough(t *testing.T) {
	env := setupTestEnv(t)

	cookies := env.loginUser(t, "alice", "supersecret")

	w := env.get(t, "/admin/dashboard", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdminDashboard_Aggregate(t *testing.T) {
	env := setupTestEnv(t)

	donor, food := env.seedFood(t)
	userCookies := env.loginUser(t, "alice", "supersecret")
	adminCookies := env.loginAdmin(t)

	w := env.postForm(t, fmt.Sprintf("/request/new/%d", food.ID), url.Values{}, userCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.get(t, "/admin/dashboard", adminCookies)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AdminDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Requests, 1)
	require.Equal(t, models.RequestStatusPending, response.Requests[0].Status)
	require.NotNil(t, response.Requests[0].User)
	require.NotNil(t, response.Requests[0].FoodItem)
	require.Len(t, response.Donors, 1)
	require.Equal(t, donor.Name, response.Donors[0].Name)
	require.Len(t, response.Users, 1)
}

func TestAdminApprove(t *testing.T) {
	env := setupTestEnv(t)

	_, food := env.seedFood(t)
	userCookies := env.loginUser(t, "alice", "supersecret")
	adminCookies := env.loginAdmin(t)

	w := env.postForm(t, fmt.Sprintf("/request/new/%d", food.ID), url.Values{}, userCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.RequestDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.postForm(t, fmt.Sprintf("/admin/approve/%d", created.ID), url.Values{
		"action": {"approve"},
	}, adminCookies)
	require.Equal(t, http.StatusOK, w.Code)

	var approved dto.RequestDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &approved))
	require.Equal(t, models.RequestStatusApproved, approved.Status)
	require.True(t, approved.Verified)

	// Approval leaves the item available.
	var item models.FoodItem
	require.NoError(t, env.db.First(&item, food.ID).Error)
	require.Equal(t, models.FoodStatusAvailable, item.Status)
}

func TestAdminApprove_InvalidAction(t *testing.T) {
	env := setupTestEnv(t)

	_, food := env.seedFood(t)
	userCookies := env.loginUser(t, "alice", "supersecret")
	adminCookies := env.loginAdmin(t)

	w := env.postForm(t, fmt.Sprintf("/request/new/%d", food.ID), url.Values{}, userCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.RequestDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.postForm(t, fmt.Sprintf("/admin/approve/%d", created.ID), url.Values{
		"action": {"escalate"},
	}, adminCookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAssignVolunteer(t *testing.T) {
	env := setupTestEnv(t)

	_, food := env.seedFood(t)
	userCookies := env.loginUser(t, "alice", "supersecret")
	adminCookies := env.loginAdmin(t)

	volunteer, err := env.volunteerService.AddVolunteer(services.AddVolunteerInput{
		Name:          "Bob",
		ContactNumber: "555-0100",
	})
	require.NoError(t, err)

	w := env.postForm(t, fmt.Sprintf("/request/new/%d", food.ID), url.Values{}, userCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.RequestDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Assignment before approval is refused.
	w = env.postForm(t, "/admin/assign_volunteer", url.Values{
		"reqid": {fmt.Sprint(created.ID)},
		"volid": {fmt.Sprint(volunteer.ID)},
	}, adminCookies)
	require.Equal(t, http.StatusConflict, w.Code)

	w = env.postForm(t, fmt.Sprintf("/admin/approve/%d", created.ID), url.Values{
		"action": {"approve"},
	}, adminCookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.postForm(t, "/admin/assign_volunteer", url.Values{
		"reqid": {fmt.Sprint(created.ID)},
		"volid": {fmt.Sprint(volunteer.ID)},
	}, adminCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var delivery dto.DeliveryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &delivery))
	require.Equal(t, models.DeliveryStatusPicked, delivery.Status)

	var item models.FoodItem
	require.NoError(t, env.db.First(&item, food.ID).Error)
	require.Equal(t, models.FoodStatusAssigned, item.Status)

	var req models.Request
	require.NoError(t, env.db.First(&req, created.ID).Error)
	require.Equal(t, models.RequestStatusAssigned, req.Status)
}

func TestAdminAddVolunteer(t *testing.T) {
	env := setupTestEnv(t)

	adminCookies := env.loginAdmin(t)

	w := env.postForm(t, "/admin/add_volunteer", url.Values{
		"name":    {"Bob"},
		"contact": {"555-0100"},
		"ngoid":   {"NGO-7"},
	}, adminCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var volunteer dto.VolunteerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &volunteer))
	require.Equal(t, "Bob", volunteer.Name)
	require.Equal(t, "NGO-7", volunteer.NGOID)

	w = env.postForm(t, "/admin/add_volunteer", url.Values{
		"name": {"No Contact"},
	}, adminCookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
