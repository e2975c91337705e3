package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/mappers"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
	"github.com/atriumhq/atrium/internal/shared/constants"
	"github.com/atriumhq/atrium/internal/shared/errors"
)

type RBACRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RBACMapper
}

func NewRBACRepository(db *gorm.DB) rbac.Repository {
	return &RBACRepositoryImpl{
		db:     db,
		mapper: mappers.NewRBACMapper(),
	}
}

func (r *RBACRepositoryImpl) GetRoleByName(ctx context.Context, name string) (*rbac.Role, error) {
	var model models.RoleModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	entity, err := r.mapper.RoleToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map role model to entity: %w", err)
	}

	return entity, nil
}

func (r *RBACRepositoryImpl) ListRolesForUser(ctx context.Context, userID uint) ([]*rbac.Role, error) {
	var roleModels []*models.RoleModel
	if err := r.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN %s ur ON ur.role_id = %s.id", constants.TableUserRoles, constants.TableRoles)).
		Where("ur.user_id = ?", userID).
		Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles for user: %w", err)
	}

	entities := make([]*rbac.Role, 0, len(roleModels))
	for _, model := range roleModels {
		entity, err := r.mapper.RoleToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map role model to entity: %w", err)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *RBACRepositoryImpl) ListModulePermissions(ctx context.Context, moduleID uint) ([]*rbac.Permission, error) {
	var permModels []*models.PermissionModel
	if err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("id ASC").
		Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list module permissions: %w", err)
	}

	entities := make([]*rbac.Permission, 0, len(permModels))
	for _, model := range permModels {
		entity, err := r.mapper.PermissionToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map permission model to entity: %w", err)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *RBACRepositoryImpl) ListRolePermissions(ctx context.Context, roleID, moduleID uint) ([]rbac.PermissionName, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Table(constants.TableRolePermissions+" rp").
		Select("p.name").
		Joins(fmt.Sprintf("JOIN %s p ON p.id = rp.permission_id", constants.TablePermissions)).
		Where("rp.role_id = ? AND p.module_id = ?", roleID, moduleID).
		Order("p.id ASC").
		Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}

	result := make([]rbac.PermissionName, 0, len(names))
	for _, n := range names {
		result = append(result, rbac.PermissionName(n))
	}

	return result, nil
}

// ListOverrides returns overrides ordered by primary key, which is the
// insertion order. The resolver replays them in this order.
func (r *RBACRepositoryImpl) ListOverrides(ctx context.Context, userID, moduleID uint) ([]*rbac.Override, error) {
	var overrideModels []*models.UserModulePermissionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Order("id ASC").
		Find(&overrideModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	entities := make([]*rbac.Override, 0, len(overrideModels))
	for _, model := range overrideModels {
		entity, err := r.mapper.OverrideToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map override model to entity: %w", err)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *RBACRepositoryImpl) SaveOverride(ctx context.Context, override *rbac.Override) error {
	model, err := r.mapper.OverrideToModel(override)
	if err != nil {
		return fmt.Errorf("failed to map override entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create override: %w", err)
	}

	if err := override.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set override ID: %w", err)
	}

	return nil
}

func (r *RBACRepositoryImpl) DeleteOverride(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModulePermissionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete override: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("override not found")
	}

	return nil
}
