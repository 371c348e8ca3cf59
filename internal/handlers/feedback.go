package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
	apierrors "github.com/divyanshukaintura04-web/food-donation-system/internal/errors"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/middleware"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
)

// FeedbackHandler serves donor feedback submission and listing.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// ListDonorFeedback returns existing feedback for a donor.
func (h *FeedbackHandler) ListDonorFeedback(c *gin.Context) {
	donorID, err := strconv.ParseUint(c.Param("donor_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid donor ID")
		return
	}

	feedbacks, err := h.feedbackService.ListDonorFeedback(donorID)
	if err != nil {
		respondFeedbackError(c, err)
		return
	}

	dtos := make([]dto.FeedbackDTO, len(feedbacks))
	for i, f := range feedbacks {
		dtos[i] = dto.ToFeedbackDTO(f)
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback": dtos,
	})
}

// SubmitFeedback appends a rating and comment for a donor.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	donorID, err := strconv.ParseUint(c.Param("donor_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid donor ID")
		return
	}

	type FeedbackRequest struct {
		Rating   int    `form:"rating" binding:"required"`
		Comments string `form:"comments"`
	}

	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "rating is required")
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(services.SubmitFeedbackInput{
		UserID:   userID,
		DonorID:  donorID,
		Rating:   req.Rating,
		Comments: req.Comments,
	})
	if err != nil {
		respondFeedbackError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackDTO(*feedback))
}

func respondFeedbackError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDonorNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidRating):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
