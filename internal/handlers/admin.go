package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
	apierrors "github.com/divyanshukaintura04-web/food-donation-system/internal/errors"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/utils"
)

// AdminHandler serves the admin dashboard and the approval/assignment actions.
type AdminHandler struct {
	workflowService  *services.WorkflowService
	volunteerService *services.VolunteerService
	dashboardService *services.DashboardService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(workflowService *services.WorkflowService, volunteerService *services.VolunteerService, dashboardService *services.DashboardService) *AdminHandler {
	return &AdminHandler{
		workflowService:  workflowService,
		volunteerService: volunteerService,
		dashboardService: dashboardService,
	}
}

// Dashboard returns the aggregate admin view: paginated requests plus
// volunteer, user and donor listings.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	overview, err := h.dashboardService.AdminDashboard(params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDashboardResponse(
		overview.Requests,
		overview.TotalRequests,
		params,
		overview.Volunteers,
		overview.Users,
		overview.Donors,
	))
}

// ApproveRequest applies the approve/reject decision to a pending request.
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	reqID, err := strconv.ParseUint(c.Param("req_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid request ID")
		return
	}

	action, err := services.ParseReviewAction(c.PostForm("action"))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	request, err := h.workflowService.ReviewRequest(reqID, action)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestDTO(*request))
}

// AssignVolunteer creates a delivery for an approved request.
func (h *AdminHandler) AssignVolunteer(c *gin.Context) {
	type AssignRequest struct {
		ReqID uint64 `form:"reqid" binding:"required"`
		VolID uint64 `form:"volid" binding:"required"`
	}

	var req AssignRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "reqid and volid are required")
		return
	}

	delivery, err := h.workflowService.AssignVolunteer(services.AssignVolunteerInput{
		ReqID: req.ReqID,
		VolID: req.VolID,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDeliveryDTO(*delivery))
}

// AddVolunteer registers a new delivery volunteer.
func (h *AdminHandler) AddVolunteer(c *gin.Context) {
	type AddVolunteerRequest struct {
		Name    string `form:"name" binding:"required"`
		Contact string `form:"contact" binding:"required"`
		NGOID   string `form:"ngoid"`
	}

	var req AddVolunteerRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "name and contact are required")
		return
	}

	volunteer, err := h.volunteerService.AddVolunteer(services.AddVolunteerInput{
		Name:          req.Name,
		ContactNumber: req.Contact,
		NGOID:         req.NGOID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVolunteerNameRequired),
			errors.Is(err, services.ErrVolunteerContactRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to add volunteer")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToVolunteerDTO(*volunteer))
}
