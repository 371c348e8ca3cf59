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

// runs submit -> approve -> assign and returns the delivery
func (env *testEnv) seedAssignedDelivery(t *testing.T) *models.Delivery {
	t.Helper()

	_, food := env.seedFood(t)
	userCookies := env.loginUser(t, "alice", "supersecret")

	volunteer, err := env.volunteerService.AddVolunteer(services.AddVolunteerInput{
		Name:          "Bob",
		ContactNumber: "555-0100",
	})
	require.NoError(t, err)

	w := env.postForm(t, fmt.Sprintf("/request/new/%d", food.ID), url.Values{}, userCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.RequestDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	_, err = env.workflowService.ReviewRequest(created.ID, services.ReviewActionApprove)
	require.NoError(t, err)

	delivery, err := env.workflowService.AssignVolunteer(services.AssignVolunteerInput{
		ReqID: created.ID,
		VolID: volunteer.ID,
	})
	require.NoError(t, err)

	return delivery
}

func TestVolunteerDashboard_ListsDeliveries(t *testing.T) {
	env := setupTestEnv(t)

	delivery := env.seedAssignedDelivery(t)

	w := env.get(t, "/volunteer/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Deliveries []dto.DeliveryDTO `json:"deliveries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Deliveries, 1)
	require.Equal(t, delivery.ID, response.Deliveries[0].ID)
	require.NotNil(t, response.Deliveries[0].Request)
	require.NotNil(t, response.Deliveries[0].Request.User)
	require.Equal(t, "alice", response.Deliveries[0].Request.User.Username)
}

func TestVolunteerUpdate_Delivered(t *testing.T) {
	env := setupTestEnv(t)

	delivery := env.seedAssignedDelivery(t)

	w := env.postForm(t, fmt.Sprintf("/volunteer/update/%d", delivery.ID), url.Values{
		"status": {"Delivered"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.DeliveryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.DeliveryStatusDelivered, response.Status)
	require.NotNil(t, response.DeliveryTime)

	var req models.Request
	require.NoError(t, env.db.First(&req, delivery.ReqID).Error)
	require.Equal(t, models.RequestStatusDelivered, req.Status)
}

func TestVolunteerUpdate_RejectsFreeTextStatus(t *testing.T) {
	env := setupTestEnv(t)

	delivery := env.seedAssignedDelivery(t)

	w := env.postForm(t, fmt.Sprintf("/volunteer/update/%d", delivery.ID), url.Values{
		"status": {"left at the door"},
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var d models.Delivery
	require.NoError(t, env.db.First(&d, delivery.ID).Error)
	require.Equal(t, models.DeliveryStatusPicked, d.Status)
}

func TestVolunteerUpdate_UnknownDelivery(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm(t, "/volunteer/update/9999", url.Values{
		"status": {"Delivered"},
	}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
