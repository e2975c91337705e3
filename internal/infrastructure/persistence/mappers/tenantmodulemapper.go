package mappers

import (
	"fmt"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

// TenantModuleMapper handles the conversion between tenant module
// associations and persistence models
type TenantModuleMapper interface {
	ToEntity(model *models.TenantModuleModel) (*catalog.TenantModule, error)
	ToModel(entity *catalog.TenantModule) (*models.TenantModuleModel, error)
	ToEntities(models []*models.TenantModuleModel) ([]*catalog.TenantModule, error)
}

type tenantModuleMapper struct{}

func NewTenantModuleMapper() TenantModuleMapper {
	return &tenantModuleMapper{}
}

func (m *tenantModuleMapper) ToEntity(model *models.TenantModuleModel) (*catalog.TenantModule, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructTenantModule(
		model.ID,
		model.TenantID,
		model.ModuleID,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct tenant module entity: %w", err)
	}

	return entity, nil
}

func (m *tenantModuleMapper) ToModel(entity *catalog.TenantModule) (*models.TenantModuleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TenantModuleModel{
		ID:        entity.ID(),
		TenantID:  entity.TenantID(),
		ModuleID:  entity.ModuleID(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *tenantModuleMapper) ToEntities(tmModels []*models.TenantModuleModel) ([]*catalog.TenantModule, error) {
	entities := make([]*catalog.TenantModule, 0, len(tmModels))
	for _, model := range tmModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
