package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
	apierrors "github.com/divyanshukaintura04-web/food-donation-system/internal/errors"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
)

// VolunteerHandler serves the volunteer dashboard and delivery updates.
type VolunteerHandler struct {
	workflowService  *services.WorkflowService
	dashboardService *services.DashboardService
}

// NewVolunteerHandler creates a new VolunteerHandler.
func NewVolunteerHandler(workflowService *services.WorkflowService, dashboardService *services.DashboardService) *VolunteerHandler {
	return &VolunteerHandler{
		workflowService:  workflowService,
		dashboardService: dashboardService,
	}
}

// Dashboard lists deliveries with their request and requester, newest first.
func (h *VolunteerHandler) Dashboard(c *gin.Context) {
	deliveries, err := h.dashboardService.VolunteerDashboard()
	if err != nil {
		apierrors.InternalError(c, "Failed to load deliveries")
		return
	}

	dtos := make([]dto.DeliveryDTO, len(deliveries))
	for i, d := range deliveries {
		dtos[i] = dto.ToDeliveryDTO(d)
	}

	c.JSON(http.StatusOK, gin.H{
		"deliveries": dtos,
	})
}

// UpdateDelivery applies a status update to a delivery. Delivered cascades
// to the linked request.
func (h *VolunteerHandler) UpdateDelivery(c *gin.Context) {
	deliveryID, err := strconv.ParseUint(c.Param("delivery_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid delivery ID")
		return
	}

	status := c.PostForm("status")
	if status == "" {
		apierrors.BadRequest(c, "status is required")
		return
	}

	delivery, err := h.workflowService.UpdateDeliveryStatus(deliveryID, status)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeliveryDTO(*delivery))
}
