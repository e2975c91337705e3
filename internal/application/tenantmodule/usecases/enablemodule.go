package usecases

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/tenantmodule/dto"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// EnableModuleUseCase opts a tenant into a catalog module. Enabling an
// already enabled module is a no-op; a previously deactivated
// association is reactivated in place, preserving history.
type EnableModuleUseCase struct {
	tenantRepo  tenant.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewEnableModuleUseCase(
	tenantRepo tenant.Repository,
	catalogRepo catalog.Repository,
	log logger.Interface,
) *EnableModuleUseCase {
	return &EnableModuleUseCase{
		tenantRepo:  tenantRepo,
		catalogRepo: catalogRepo,
		logger:      log,
	}
}

func (uc *EnableModuleUseCase) Execute(ctx context.Context, request dto.EnableModuleRequest) (*dto.TenantModuleResponse, error) {
	code := catalog.Code(request.ModuleCode)
	if !code.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid module code: %s", request.ModuleCode))
	}

	tenantEntity, err := uc.tenantRepo.GetByID(ctx, request.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenantEntity == nil {
		return nil, errors.NewNotFoundError("tenant not found")
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
		tm, err = catalog.NewTenantModule(request.TenantID, module.ID())
		if err != nil {
			return nil, err
		}
	} else {
		tm.Activate()
	}

	if err := uc.catalogRepo.SaveTenantModule(ctx, tm); err != nil {
		uc.logger.Errorw("failed to save tenant module", "error", err,
			"tenant_id", request.TenantID, "module", code)
		return nil, fmt.Errorf("failed to save tenant module: %w", err)
	}

	uc.logger.Infow("module enabled for tenant",
		"tenant_id", request.TenantID, "module", code)

	return &dto.TenantModuleResponse{
		ModuleCode: module.Code().String(),
		ModuleName: module.Name(),
		Active:     tm.IsActive(),
		UpdatedAt:  tm.UpdatedAt(),
	}, nil
}
