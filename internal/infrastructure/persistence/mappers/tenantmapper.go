package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/atriumhq/atrium/internal/domain/tenant"
	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

// TenantMapper handles the conversion between domain entities and persistence models
type TenantMapper interface {
	ToEntity(model *models.TenantModel) (*tenant.Tenant, error)
	ToModel(entity *tenant.Tenant) (*models.TenantModel, error)
	ToEntities(models []*models.TenantModel) ([]*tenant.Tenant, error)
}

type tenantMapper struct{}

func NewTenantMapper() TenantMapper {
	return &tenantMapper{}
}

func (m *tenantMapper) ToEntity(model *models.TenantModel) (*tenant.Tenant, error) {
	if model == nil {
		return nil, nil
	}

	metadata := map[string]any(model.Metadata)
	if metadata == nil {
		metadata = make(map[string]any)
	}

	entity, err := tenant.ReconstructTenant(
		model.ID,
		model.Name,
		model.Slug,
		vo.SubscriptionStatus(model.Status),
		model.PlanExpiresAt,
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct tenant entity: %w", err)
	}

	return entity, nil
}

func (m *tenantMapper) ToModel(entity *tenant.Tenant) (*models.TenantModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TenantModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		Slug:          entity.Slug(),
		Status:        entity.Status().String(),
		PlanExpiresAt: entity.PlanExpiresAt(),
		Metadata:      datatypes.JSONMap(entity.Metadata()),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *tenantMapper) ToEntities(tenantModels []*models.TenantModel) ([]*tenant.Tenant, error) {
	entities := make([]*tenant.Tenant, 0, len(tenantModels))
	for _, model := range tenantModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
