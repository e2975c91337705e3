package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appaccess "github.com/atriumhq/atrium/internal/application/access"
	"github.com/atriumhq/atrium/internal/application/access/dto"
	"github.com/atriumhq/atrium/internal/interfaces/http/middleware"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// AccessHandler exposes access decisions and navigation to clients.
// Both endpoints evaluate current entitlement state on every call.
type AccessHandler struct {
	accessService *appaccess.Service
	logger        logger.Interface
}

func NewAccessHandler(accessService *appaccess.Service, log logger.Interface) *AccessHandler {
	return &AccessHandler{
		accessService: accessService,
		logger:        log,
	}
}

// Check handles POST /api/access/check. A denial is a successful
// response carrying allowed=false and the reason code; only loader
// faults produce error statuses.
func (h *AccessHandler) Check(c *gin.Context) {
	var request dto.CheckAccessRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	userID := middleware.UserIDFromContext(c)

	var (
		result *dto.DecisionResponse
		err    error
	)
	switch {
	case userID == 0 && request.TenantID != nil:
		result, err = h.accessService.DecideAnonymous(c.Request.Context(), *request.TenantID, request.ModuleCode, request.Action)
	case userID == 0:
		utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id is required for anonymous checks")
		return
	case request.TenantID != nil && *request.TenantID != middleware.TenantIDFromContext(c):
		result, err = h.accessService.DecideInTenant(c.Request.Context(), userID, *request.TenantID, request.ModuleCode, request.Action)
	default:
		result, err = h.accessService.Decide(c.Request.Context(), userID, request.ModuleCode, request.Action)
	}
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Navigation handles GET /api/navigation
func (h *AccessHandler) Navigation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.accessService.BuildMenu(c.Request.Context(), userID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}
