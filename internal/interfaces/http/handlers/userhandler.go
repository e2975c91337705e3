package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appuser "github.com/atriumhq/atrium/internal/application/user"
	"github.com/atriumhq/atrium/internal/application/user/dto"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	userService *appuser.Service
	logger      logger.Interface
}

func NewUserHandler(userService *appuser.Service, log logger.Interface) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      log,
	}
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var request dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.userService.Register(c.Request.Context(), request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListByTenant handles GET /api/tenants/:id/users
func (h *UserHandler) ListByTenant(c *gin.Context) {
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	page, pageSize := pagination(c)

	items, total, err := h.userService.ListByTenant(c.Request.Context(), tenantID, page, pageSize)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	})
}

// AssignRole handles POST /api/users/:id/roles
func (h *UserHandler) AssignRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var request dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.userService.AssignRole(c.Request.Context(), id, request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// RevokeRole handles DELETE /api/users/:id/roles/:role
func (h *UserHandler) RevokeRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.userService.RevokeRole(c.Request.Context(), id, c.Param("role"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Disable handles POST /api/users/:id/disable
func (h *UserHandler) Disable(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Disable(c.Request.Context(), id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}
