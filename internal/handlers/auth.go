package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/constants"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
	apierrors "github.com/divyanshukaintura04-web/food-donation-system/internal/errors"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
)

// AuthHandler coordinates signup, login and logout for users and admins.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user account.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		UserType    string `form:"usertype" binding:"required"`
		Name        string `form:"name" binding:"required"`
		Contact     string `form:"contact"`
		Email       string `form:"email"`
		Address     string `form:"address"`
		ProofType   string `form:"proof_type"`
		ProofNumber string `form:"proof_number"`
		Username    string `form:"username" binding:"required,min=3,max=50"`
		Password    string `form:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid signup form")
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		UserType:      req.UserType,
		Name:          req.Name,
		ContactNumber: req.Contact,
		Email:         req.Email,
		Address:       req.Address,
		ProofType:     req.ProofType,
		ProofNumber:   req.ProofNumber,
		Username:      req.Username,
		Password:      req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user or admin and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Role     string `form:"role"`
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid login form")
		return
	}

	session := sessions.Default(c)

	if req.Role == "admin" {
		admin, err := h.authService.LoginAdmin(services.LoginInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			respondAuthError(c, err)
			return
		}

		session.Clear()
		session.Set(constants.ContextKeyAdminID, admin.ID)
		if err := session.Save(); err != nil {
			apierrors.InternalError(c, "Failed to save session")
			return
		}

		c.JSON(http.StatusOK, dto.ToAdminDTO(*admin))
		return
	}

	user, err := h.authService.LoginUser(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session.Clear()
	session.Set(constants.ContextKeyUserID, user.ID)
	session.Set(constants.ContextKeyUserType, user.UserType)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout removes the session and sends the caller back to the landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateUser):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
