package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/atriumhq/atrium/internal/application/tenantmodule/dto"
	"github.com/atriumhq/atrium/internal/application/tenantmodule/usecases"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// TenantModuleHandler handles tenant module enablement HTTP requests
type TenantModuleHandler struct {
	enableModuleUseCase      *usecases.EnableModuleUseCase
	disableModuleUseCase     *usecases.DisableModuleUseCase
	listTenantModulesUseCase *usecases.ListTenantModulesUseCase
	logger                   logger.Interface
}

func NewTenantModuleHandler(
	enableModuleUseCase *usecases.EnableModuleUseCase,
	disableModuleUseCase *usecases.DisableModuleUseCase,
	listTenantModulesUseCase *usecases.ListTenantModulesUseCase,
	log logger.Interface,
) *TenantModuleHandler {
	return &TenantModuleHandler{
		enableModuleUseCase:      enableModuleUseCase,
		disableModuleUseCase:     disableModuleUseCase,
		listTenantModulesUseCase: listTenantModulesUseCase,
		logger:                   log,
	}
}

// List handles GET /api/tenants/:id/modules
func (h *TenantModuleHandler) List(c *gin.Context) {
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.listTenantModulesUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Enable handles POST /api/tenants/:id/modules/:code/enable
func (h *TenantModuleHandler) Enable(c *gin.Context) {
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	request := dto.EnableModuleRequest{
		TenantID:   tenantID,
		ModuleCode: c.Param("code"),
	}

	result, err := h.enableModuleUseCase.Execute(c.Request.Context(), request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Disable handles POST /api/tenants/:id/modules/:code/disable
func (h *TenantModuleHandler) Disable(c *gin.Context) {
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	request := dto.DisableModuleRequest{
		TenantID:   tenantID,
		ModuleCode: c.Param("code"),
	}

	result, err := h.disableModuleUseCase.Execute(c.Request.Context(), request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}
