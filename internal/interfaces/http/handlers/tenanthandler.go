package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apptenant "github.com/atriumhq/atrium/internal/application/tenant"
	"github.com/atriumhq/atrium/internal/application/tenant/dto"
	"github.com/atriumhq/atrium/internal/shared/constants"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// TenantHandler handles tenant administration HTTP requests
type TenantHandler struct {
	tenantService *apptenant.Service
	logger        logger.Interface
}

func NewTenantHandler(tenantService *apptenant.Service, log logger.Interface) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        log,
	}
}

// Create handles POST /api/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var request dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.tenantService.Create(c.Request.Context(), request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get handles GET /api/tenants/:id
func (h *TenantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.tenantService.Get(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// List handles GET /api/tenants
func (h *TenantHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	items, total, err := h.tenantService.List(c.Request.Context(), page, pageSize)
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

// Suspend handles POST /api/tenants/:id/suspend
func (h *TenantHandler) Suspend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.tenantService.Suspend(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Reactivate handles POST /api/tenants/:id/reactivate
func (h *TenantHandler) Reactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var request dto.ReactivateTenantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.tenantService.Reactivate(c.Request.Context(), id, request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// MarkExpired handles POST /api/tenants/:id/expire
func (h *TenantHandler) MarkExpired(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.tenantService.MarkExpired(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
