// Package tenant provides the administrative operations on tenants:
// provisioning and subscription state changes. Module content CRUD is
// deliberately not part of this service.
package tenant

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/application/tenant/dto"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/shared/errors"
	"github.com/atriumhq/atrium/internal/shared/logger"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

type Service struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewService(tenantRepo tenant.Repository, log logger.Interface) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		logger:     log,
	}
}

func (s *Service) Create(ctx context.Context, request dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	existing, err := s.tenantRepo.GetBySlug(ctx, request.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check tenant slug: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("tenant slug is already taken")
	}

	entity, err := tenant.NewTenant(request.Name, request.Slug, request.PlanExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.tenantRepo.Create(ctx, entity); err != nil {
		s.logger.Errorw("failed to create tenant", "error", err, "slug", request.Slug)
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Infow("tenant created", "tenant_id", entity.ID(), "slug", entity.Slug())
	return toResponse(entity), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.TenantResponse, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context, page, pageSize int) ([]dto.TenantResponse, int64, error) {
	tenants, total, err := s.tenantRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	result := make([]dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		result = append(result, *toResponse(t))
	}
	return result, total, nil
}

func (s *Service) Suspend(ctx context.Context, id uint) (*dto.TenantResponse, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Suspend(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.tenantRepo.Update(ctx, entity); err != nil {
		s.logger.Errorw("failed to suspend tenant", "error", err, "tenant_id", id)
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.logger.Infow("tenant suspended", "tenant_id", id)
	return toResponse(entity), nil
}

func (s *Service) Reactivate(ctx context.Context, id uint, request dto.ReactivateTenantRequest) (*dto.TenantResponse, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Reactivate(request.PlanExpiresAt); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.tenantRepo.Update(ctx, entity); err != nil {
		s.logger.Errorw("failed to reactivate tenant", "error", err, "tenant_id", id)
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.logger.Infow("tenant reactivated", "tenant_id", id)
	return toResponse(entity), nil
}

func (s *Service) MarkExpired(ctx context.Context, id uint) (*dto.TenantResponse, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.MarkExpired(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.tenantRepo.Update(ctx, entity); err != nil {
		s.logger.Errorw("failed to expire tenant", "error", err, "tenant_id", id)
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.logger.Infow("tenant marked expired", "tenant_id", id)
	return toResponse(entity), nil
}

func (s *Service) load(ctx context.Context, id uint) (*tenant.Tenant, error) {
	entity, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("tenant not found")
	}
	return entity, nil
}

func toResponse(t *tenant.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:            t.ID(),
		Name:          t.Name(),
		Slug:          t.Slug(),
		Status:        t.Status().String(),
		PlanExpiresAt: t.PlanExpiresAt(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}
