package mappers

import (
	"fmt"

	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user entities and
// persistence models. Role names live in a join table; callers resolve
// and pass them alongside the row.
type UserMapper interface {
	ToEntity(model *models.UserModel, roleNames []string) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel, roleNames []string) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.TenantID,
		roleNames,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		TenantID:     entity.TenantID(),
		Status:       entity.Status(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}
