package usecases

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/tenantmodule/dto"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// DisableModuleUseCase switches a module off for a tenant. The
// association row is kept so re-enabling restores module-scoped
// overrides untouched.
type DisableModuleUseCase struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewDisableModuleUseCase(catalogRepo catalog.Repository, log logger.Interface) *DisableModuleUseCase {
	return &DisableModuleUseCase{
		catalogRepo: catalogRepo,
		logger:      log,
	}
}

func (uc *DisableModuleUseCase) Execute(ctx context.Context, request dto.DisableModuleRequest) (*dto.TenantModuleResponse, error) {
	code := catalog.Code(request.ModuleCode)
	if !code.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid module code: %s", request.ModuleCode))
	}

	module, err := uc.catalogRepo.GetModuleByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load module: %w", err)
	}
	if module == nil {
		return nil, errors.NewNotFoundError("module not found")
	}

	tm, err := uc.catalogRepo.GetTenantModule(ctx, request.TenantID, module.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant module: %w", err)
	}
	if tm == nil {
		return nil, errors.NewNotFoundError("module is not enabled for this tenant")
	}

	tm.Deactivate()

	if err := uc.catalogRepo.SaveTenantModule(ctx, tm); err != nil {
		uc.logger.Errorw("failed to save tenant module", "error", err,
			"tenant_id", request.TenantID, "module", code)
		return nil, fmt.Errorf("failed to save tenant module: %w", err)
	}

	uc.logger.Infow("module disabled for tenant",
		"tenant_id", request.TenantID, "module", code)

	return &dto.TenantModuleResponse{
		ModuleCode: module.Code().String(),
		ModuleName: module.Name(),
		Active:     tm.IsActive(),
		UpdatedAt:  tm.UpdatedAt(),
	}, nil
}
