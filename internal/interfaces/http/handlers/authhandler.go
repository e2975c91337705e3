package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/atriumhq/atrium/internal/application/auth"
	"github.com/atriumhq/atrium/internal/application/auth/dto"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *appauth.Service
	logger      logger.Interface
}

func NewAuthHandler(authService *appauth.Service, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}
