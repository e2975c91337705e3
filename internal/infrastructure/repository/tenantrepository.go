package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/mappers"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
	"github.com/atriumhq/atrium/internal/shared/errors"
)

type TenantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) tenant.Repository {
	return &TenantRepositoryImpl{
		db:     db,
		mapper: mappers.NewTenantMapper(),
	}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, entity *tenant.Tenant) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map tenant entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set tenant ID: %w", err)
	}

	return nil
}

func (r *TenantRepositoryImpl) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map tenant model to entity: %w", err)
	}

	return entity, nil
}

func (r *TenantRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map tenant model to entity: %w", err)
	}

	return entity, nil
}

func (r *TenantRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*tenant.Tenant, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.TenantModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	var modelList []*models.TenantModel
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if pageSize > 0 {
		query = query.Limit(pageSize)
		if page > 1 {
			query = query.Offset((page - 1) * pageSize)
		}
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map tenant models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, entity *tenant.Tenant) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map tenant entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tenant not found")
	}

	return nil
}
