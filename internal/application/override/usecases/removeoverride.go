package usecases

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// RemoveOverrideUseCase deletes a recorded override, restoring the
// role default for that permission.
type RemoveOverrideUseCase struct {
	rbacRepo rbac.Repository
	logger   logger.Interface
}

func NewRemoveOverrideUseCase(rbacRepo rbac.Repository, log logger.Interface) *RemoveOverrideUseCase {
	return &RemoveOverrideUseCase{
		rbacRepo: rbacRepo,
		logger:   log,
	}
}

func (uc *RemoveOverrideUseCase) Execute(ctx context.Context, overrideID uint) error {
	if err := uc.rbacRepo.DeleteOverride(ctx, overrideID); err != nil {
		uc.logger.Errorw("failed to delete override", "error", err, "override_id", overrideID)
		return fmt.Errorf("failed to delete override: %w", err)
	}

	uc.logger.Infow("override removed", "override_id", overrideID)
	return nil
}
