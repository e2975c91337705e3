// Package user manages user accounts and role assignments.
package user

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/user/dto"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) bool
}

type Service struct {
	userRepo   user.Repository
	tenantRepo tenant.Repository
	rbacRepo   rbac.Repository
	hasher     PasswordHasher
	logger     logger.Interface
}

func NewService(
	userRepo user.Repository,
	tenantRepo tenant.Repository,
	rbacRepo rbac.Repository,
	hasher PasswordHasher,
	log logger.Interface,
) *Service {
	return &Service{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		rbacRepo:   rbacRepo,
		hasher:     hasher,
		logger:     log,
	}
}

func (s *Service) Register(ctx context.Context, request dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	if request.TenantID != nil {
		t, err := s.tenantRepo.GetByID(ctx, *request.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tenant: %w", err)
		}
		if t == nil {
			return nil, errors.NewNotFoundError("tenant not found")
		}
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity, err := user.NewUser(request.Email, request.Name, hash, request.TenantID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		s.logger.Errorw("failed to create user", "error", err, "email", request.Email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infow("user registered", "user_id", entity.ID(), "tenant_id", request.TenantID)
	return toResponse(entity), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func (s *Service) ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.userRepo.ListByTenant(ctx, tenantID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, *toResponse(u))
	}
	return result, total, nil
}

func (s *Service) AssignRole(ctx context.Context, userID uint, request dto.AssignRoleRequest) (*dto.UserResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	entity, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	role, err := s.rbacRepo.GetRoleByName(ctx, request.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to load role: %w", err)
	}
	if role == nil {
		return nil, errors.NewNotFoundError("role not found")
	}

	if err := entity.AssignRole(request.Role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Update(ctx, entity); err != nil {
		s.logger.Errorw("failed to assign role", "error", err, "user_id", userID, "role", request.Role)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Infow("role assigned", "user_id", userID, "role", request.Role)
	return toResponse(entity), nil
}

func (s *Service) RevokeRole(ctx context.Context, userID uint, roleName string) (*dto.UserResponse, error) {
	entity, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	entity.RevokeRole(roleName)

	if err := s.userRepo.Update(ctx, entity); err != nil {
		s.logger.Errorw("failed to revoke role", "error", err, "user_id", userID, "role", roleName)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Infow("role revoked", "user_id", userID, "role", roleName)
	return toResponse(entity), nil
}

func (s *Service) Disable(ctx context.Context, userID uint) error {
	entity, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	entity.Disable()

	if err := s.userRepo.Update(ctx, entity); err != nil {
		s.logger.Errorw("failed to disable user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Infow("user disabled", "user_id", userID)
	return nil
}

func (s *Service) load(ctx context.Context, id uint) (*user.User, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return entity, nil
}

func toResponse(u *user.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		TenantID:  u.TenantID(),
		Roles:     u.RoleNames(),
		Status:    u.Status(),
		CreatedAt: u.CreatedAt(),
	}
}
