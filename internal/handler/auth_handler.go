package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/middleware"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	"github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler wires HTTP endpoints to the teacher session service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Open a teacher session
// @Description Exchange the shared teacher password for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetMessage(c, "Login berhasil! Selamat datang, Ustadz/Ustadzah")
	response.JSON(c, http.StatusOK, res, middleware.ExtractMeta(c))
}

// Logout godoc
// @Summary Close the teacher session
// @Description Tokens are stateless; the client discards its token
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.SetMessage(c, "Berhasil logout")
	response.JSON(c, http.StatusOK, gin.H{"loggedOut": true}, middleware.ExtractMeta(c))
}
