package usecases

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/tenantmodule/dto"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// ListTenantModulesUseCase returns the full catalog annotated with the
// tenant's enablement state, in catalog order.
type ListTenantModulesUseCase struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewListTenantModulesUseCase(catalogRepo catalog.Repository, log logger.Interface) *ListTenantModulesUseCase {
	return &ListTenantModulesUseCase{
		catalogRepo: catalogRepo,
		logger:      log,
	}
}

func (uc *ListTenantModulesUseCase) Execute(ctx context.Context, tenantID uint) ([]dto.TenantModuleResponse, error) {
	modules, err := uc.catalogRepo.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	associations, err := uc.catalogRepo.ListTenantModules(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant modules: %w", err)
	}

	activeByModule := make(map[uint]*catalog.TenantModule, len(associations))
	for _, tm := range associations {
		activeByModule[tm.ModuleID()] = tm
	}

	result := make([]dto.TenantModuleResponse, 0, len(modules))
	for _, m := range modules {
		resp := dto.TenantModuleResponse{
			ModuleCode: m.Code().String(),
			ModuleName: m.Name(),
		}
		if tm, ok := activeByModule[m.ID()]; ok {
			resp.Active = tm.IsActive()
			resp.UpdatedAt = tm.UpdatedAt()
		}
		result = append(result, resp)
	}

	return result, nil
}
