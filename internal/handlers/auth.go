package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waylo/companion/backend/internal/apierror"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(requestID, err))
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResp)
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(requestID, err))
		return
	}

	authResp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResp)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) writeAuthError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		apierror.WriteProblem(c, apierror.NewInvalidCredentialsError(requestID))
	case errors.Is(err, service.ErrProfileNotFound):
		p := apierror.NewNotFoundError(requestID, "user", c.GetString("user_id"))
		p.UserMessage = "User data not found"
		apierror.WriteProblem(c, p)
	case errors.Is(err, service.ErrEmailTaken):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, err.Error(), "An account with this email already exists"))
	default:
		writeFetchError(c, err)
	}
}
