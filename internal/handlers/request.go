package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
	apierrors "github.com/divyanshukaintura04-web/food-donation-system/internal/errors"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/middleware"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/uploads"
)

// RequestHandler serves the food listing and request submission.
type RequestHandler struct {
	workflowService  *services.WorkflowService
	dashboardService *services.DashboardService
	proofStore       *uploads.Store
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(workflowService *services.WorkflowService, dashboardService *services.DashboardService, proofStore *uploads.Store) *RequestHandler {
	return &RequestHandler{
		workflowService:  workflowService,
		dashboardService: dashboardService,
		proofStore:       proofStore,
	}
}

// UserDashboard lists available food items with donor information.
func (h *RequestHandler) UserDashboard(c *gin.Context) {
	items, err := h.dashboardService.AvailableFood()
	if err != nil {
		apierrors.InternalError(c, "Failed to load available food")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food": dto.ToFoodItemDTOs(items),
	})
}

// NewRequestForm returns the food item a request form would be rendered for.
func (h *RequestHandler) NewRequestForm(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("food_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid food ID")
		return
	}

	food, err := h.workflowService.FoodDetails(foodID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFoodItemDTO(*food))
}

// SubmitRequest creates a pending request for a food item, storing the
// optional proof-of-need upload.
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	foodID, err := strconv.ParseUint(c.Param("food_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid food ID")
		return
	}

	var proofFilename string
	if file, err := c.FormFile("proof"); err == nil && file != nil {
		proofFilename = h.proofStore.GenerateFilename(file.Filename)
		dest := filepath.Join(h.proofStore.Dir(), proofFilename)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			apierrors.InternalError(c, "Failed to store proof file")
			return
		}
	}

	request, err := h.workflowService.SubmitRequest(services.SubmitRequestInput{
		UserID:    userID,
		FoodID:    foodID,
		ProofFile: proofFilename,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestDTO(*request))
}

// ServeProofFile serves a previously uploaded proof file by name.
func (h *RequestHandler) ServeProofFile(c *gin.Context) {
	path, err := h.proofStore.Resolve(c.Param("filename"))
	if err != nil {
		apierrors.NotFound(c, "File not found")
		return
	}
	c.File(path)
}

func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFoodNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrVolunteerNotFound),
		errors.Is(err, services.ErrDeliveryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFoodNotAvailable),
		errors.Is(err, services.ErrDeliveryAlreadyExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		apierrors.InvalidTransition(c, err.Error())
	case errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrInvalidDeliveryStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
