package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/mappers"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
	"github.com/atriumhq/atrium/internal/shared/constants"
	"github.com/atriumhq/atrium/internal/shared/errors"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

// Create stores the user row and its role assignments in one
// transaction.
func (r *UserRepositoryImpl) Create(ctx context.Context, entity *user.User) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map user entity to model: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return r.syncRoles(tx, model.ID, entity.RoleNames())
	})
	if err != nil {
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return r.loadUser(ctx, &model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.loadUser(ctx, &model)
}

func (r *UserRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]*user.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var modelList []*models.UserModel
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC")

	if pageSize > 0 {
		query = query.Limit(pageSize)
		if page > 1 {
			query = query.Offset((page - 1) * pageSize)
		}
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.loadUser(ctx, model)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, entity *user.User) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map user entity to model: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("user not found")
		}
		return r.syncRoles(tx, model.ID, entity.RoleNames())
	})
}

func (r *UserRepositoryImpl) loadUser(ctx context.Context, model *models.UserModel) (*user.User, error) {
	roleNames, err := r.roleNames(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	entity, err := r.mapper.ToEntity(model, roleNames)
	if err != nil {
		return nil, fmt.Errorf("failed to map user model to entity: %w", err)
	}

	return entity, nil
}

func (r *UserRepositoryImpl) roleNames(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Table(constants.TableUserRoles+" ur").
		Select("r.name").
		Joins(fmt.Sprintf("JOIN %s r ON r.id = ur.role_id", constants.TableRoles)).
		Where("ur.user_id = ?", userID).
		Order("ur.id ASC").
		Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	return names, nil
}

// syncRoles reconciles the join table with the entity's role names.
// Unknown role names fail the transaction rather than being silently
// skipped.
func (r *UserRepositoryImpl) syncRoles(tx *gorm.DB, userID uint, roleNames []string) error {
	var roleModels []*models.RoleModel
	if len(roleNames) > 0 {
		if err := tx.Where("name IN ?", roleNames).Find(&roleModels).Error; err != nil {
			return fmt.Errorf("failed to resolve roles: %w", err)
		}
		if len(roleModels) != len(roleNames) {
			return fmt.Errorf("unknown role in assignment: %v", roleNames)
		}
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.UserRoleModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}

	for _, role := range roleModels {
		link := &models.UserRoleModel{UserID: userID, RoleID: role.ID}
		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("failed to assign role: %w", err)
		}
	}

	return nil
}
