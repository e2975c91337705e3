package usecases

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/override/dto"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// ListOverridesUseCase lists a user's overrides for one module in the
// order they were recorded.
type ListOverridesUseCase struct {
	catalogRepo catalog.Repository
	rbacRepo    rbac.Repository
	logger      logger.Interface
}

func NewListOverridesUseCase(catalogRepo catalog.Repository, rbacRepo rbac.Repository, log logger.Interface) *ListOverridesUseCase {
	return &ListOverridesUseCase{
		catalogRepo: catalogRepo,
		rbacRepo:    rbacRepo,
		logger:      log,
	}
}

func (uc *ListOverridesUseCase) Execute(ctx context.Context, userID uint, moduleCode string) ([]dto.OverrideResponse, error) {
	code := catalog.Code(moduleCode)
	if !code.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid module code: %s", moduleCode))
	}

	module, err := uc.catalogRepo.GetModuleByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load module: %w", err)
	}
	if module == nil {
		return nil, errors.NewNotFoundError("module not found")
	}

	overrides, err := uc.rbacRepo.ListOverrides(ctx, userID, module.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	result := make([]dto.OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		result = append(result, dto.OverrideResponse{
			ID:         o.ID(),
			UserID:     o.UserID(),
			ModuleCode: code.String(),
			Permission: o.Permission().String(),
			Granted:    o.Granted(),
			CreatedAt:  o.CreatedAt(),
		})
	}

	return result, nil
}
