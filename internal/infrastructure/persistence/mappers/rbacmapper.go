package mappers

import (
	"fmt"

	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

// RBACMapper handles the conversion between rbac entities and
// persistence models
type RBACMapper interface {
	RoleToEntity(model *models.RoleModel) (*rbac.Role, error)
	PermissionToEntity(model *models.PermissionModel) (*rbac.Permission, error)
	OverrideToEntity(model *models.UserModulePermissionModel) (*rbac.Override, error)
	OverrideToModel(entity *rbac.Override) (*models.UserModulePermissionModel, error)
}

type rbacMapper struct{}

func NewRBACMapper() RBACMapper {
	return &rbacMapper{}
}

func (m *rbacMapper) RoleToEntity(model *models.RoleModel) (*rbac.Role, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := rbac.ReconstructRole(
		model.ID,
		model.Name,
		model.TenantID,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role entity: %w", err)
	}

	return entity, nil
}

func (m *rbacMapper) PermissionToEntity(model *models.PermissionModel) (*rbac.Permission, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := rbac.ReconstructPermission(
		model.ID,
		rbac.PermissionName(model.Name),
		model.ModuleID,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct permission entity: %w", err)
	}

	return entity, nil
}

func (m *rbacMapper) OverrideToEntity(model *models.UserModulePermissionModel) (*rbac.Override, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := rbac.ReconstructOverride(
		model.ID,
		model.UserID,
		model.ModuleID,
		rbac.PermissionName(model.Permission),
		model.Granted,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct override entity: %w", err)
	}

	return entity, nil
}

func (m *rbacMapper) OverrideToModel(entity *rbac.Override) (*models.UserModulePermissionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModulePermissionModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		ModuleID:   entity.ModuleID(),
		Permission: entity.Permission().String(),
		Granted:    entity.Granted(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}
