package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kosherspots/kosherspots-api/internal/dto"
	appErrors "github.com/kosherspots/kosherspots-api/pkg/errors"
	"github.com/kosherspots/kosherspots-api/pkg/response"
)

type loginService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler exposes the operator login endpoint.
type AuthHandler struct {
	auth loginService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth loginService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Operator login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
