package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atriumhq/atrium/internal/application/override/dto"
	"github.com/atriumhq/atrium/internal/application/override/usecases"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// OverrideHandler handles permission override HTTP requests
type OverrideHandler struct {
	recordOverrideUseCase *usecases.RecordOverrideUseCase
	removeOverrideUseCase *usecases.RemoveOverrideUseCase
	listOverridesUseCase  *usecases.ListOverridesUseCase
	logger                logger.Interface
}

func NewOverrideHandler(
	recordOverrideUseCase *usecases.RecordOverrideUseCase,
	removeOverrideUseCase *usecases.RemoveOverrideUseCase,
	listOverridesUseCase *usecases.ListOverridesUseCase,
	log logger.Interface,
) *OverrideHandler {
	return &OverrideHandler{
		recordOverrideUseCase: recordOverrideUseCase,
		removeOverrideUseCase: removeOverrideUseCase,
		listOverridesUseCase:  listOverridesUseCase,
		logger:                log,
	}
}

// Record handles POST /api/overrides
func (h *OverrideHandler) Record(c *gin.Context) {
	var request dto.RecordOverrideRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result, err := h.recordOverrideUseCase.Execute(c.Request.Context(), request)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Remove handles DELETE /api/overrides/:id
func (h *OverrideHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.removeOverrideUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// List handles GET /api/users/:id/overrides/:code
func (h *OverrideHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.listOverridesUseCase.Execute(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, result)
}
