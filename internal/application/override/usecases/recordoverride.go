package usecases

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/override/dto"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// RecordOverrideUseCase appends a permission override for a user on a
// module. Overrides are append-only; the resolver replays them in
// insertion order so the newest write wins. The permission must exist
// in the module's catalog: the read side degrades gracefully on
// malformed data, but the write side refuses to create it.
type RecordOverrideUseCase struct {
	userRepo    user.Repository
	catalogRepo catalog.Repository
	rbacRepo    rbac.Repository
	logger      logger.Interface
}

func NewRecordOverrideUseCase(
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	rbacRepo rbac.Repository,
	log logger.Interface,
) *RecordOverrideUseCase {
	return &RecordOverrideUseCase{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		rbacRepo:    rbacRepo,
		logger:      log,
	}
}

func (uc *RecordOverrideUseCase) Execute(ctx context.Context, request dto.RecordOverrideRequest) (*dto.OverrideResponse, error) {
	code := catalog.Code(request.ModuleCode)
	if !code.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid module code: %s", request.ModuleCode))
	}

	permission := rbac.PermissionName(request.Permission)
	if !permission.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid permission name: %s", request.Permission))
	}

	userEntity, err := uc.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	module, err := uc.catalogRepo.GetModuleByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load module: %w", err)
	}
	if module == nil {
		return nil, errors.NewNotFoundError("module not found")
	}

	declared, err := uc.rbacRepo.ListModulePermissions(ctx, module.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load module permissions: %w", err)
	}
	inCatalog := false
	for _, p := range declared {
		if p.Name() == permission {
			inCatalog = true
			break
		}
	}
	if !inCatalog {
		return nil, errors.NewValidationError(
			fmt.Sprintf("permission %s is not declared for module %s", permission, code))
	}

	override, err := rbac.NewOverride(request.UserID, module.ID(), permission, request.Granted)
	if err != nil {
		return nil, err
	}

	if err := uc.rbacRepo.SaveOverride(ctx, override); err != nil {
		uc.logger.Errorw("failed to save override", "error", err,
			"user_id", request.UserID, "module", code, "permission", permission)
		return nil, fmt.Errorf("failed to save override: %w", err)
	}

	uc.logger.Infow("override recorded",
		"user_id", request.UserID, "module", code,
		"permission", permission, "granted", request.Granted)

	return &dto.OverrideResponse{
		ID:         override.ID(),
		UserID:     override.UserID(),
		ModuleCode: code.String(),
		Permission: override.Permission().String(),
		Granted:    override.Granted(),
		CreatedAt:  override.CreatedAt(),
	}, nil
}
