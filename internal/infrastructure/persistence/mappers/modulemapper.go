package mappers

import (
	"fmt"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

// ModuleMapper handles the conversion between catalog entities and
// persistence models. Nav items are a separate table; callers pass the
// module's items already sorted by their own sort order.
type ModuleMapper interface {
	ToEntity(model *models.ModuleModel, navItems []*models.NavItemModel) (*catalog.Module, error)
	ToModel(entity *catalog.Module) (*models.ModuleModel, error)
}

type moduleMapper struct{}

func NewModuleMapper() ModuleMapper {
	return &moduleMapper{}
}

func (m *moduleMapper) ToEntity(model *models.ModuleModel, navItems []*models.NavItemModel) (*catalog.Module, error) {
	if model == nil {
		return nil, nil
	}

	items := make([]catalog.NavItem, 0, len(navItems))
	for _, item := range navItems {
		items = append(items, catalog.NavItem{
			Label:          item.Label,
			Route:          item.Route,
			Icon:           item.Icon,
			ViewPermission: item.ViewPermission,
		})
	}

	entity, err := catalog.ReconstructModule(
		model.ID,
		catalog.Code(model.Code),
		model.Name,
		model.Icon,
		model.Route,
		model.SortOrder,
		model.ActiveGlobally,
		items,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct module entity: %w", err)
	}

	return entity, nil
}

func (m *moduleMapper) ToModel(entity *catalog.Module) (*models.ModuleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ModuleModel{
		ID:             entity.ID(),
		Code:           entity.Code().String(),
		Name:           entity.Name(),
		Icon:           entity.Icon(),
		Route:          entity.Route(),
		SortOrder:      entity.SortOrder(),
		ActiveGlobally: entity.ActiveGlobally(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}
