package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/mappers"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

type CatalogRepositoryImpl struct {
	db           *gorm.DB
	moduleMapper mappers.ModuleMapper
	tmMapper     mappers.TenantModuleMapper
}

func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &CatalogRepositoryImpl{
		db:           db,
		moduleMapper: mappers.NewModuleMapper(),
		tmMapper:     mappers.NewTenantModuleMapper(),
	}
}

// ListModules returns the catalog in curated sort order. Navigation
// depends on this ordering, so it is fixed here rather than left to
// the caller.
func (r *CatalogRepositoryImpl) ListModules(ctx context.Context) ([]*catalog.Module, error) {
	var moduleModels []*models.ModuleModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&moduleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	if len(moduleModels) == 0 {
		return nil, nil
	}

	moduleIDs := make([]uint, 0, len(moduleModels))
	for _, m := range moduleModels {
		moduleIDs = append(moduleIDs, m.ID)
	}

	var navModels []*models.NavItemModel
	if err := r.db.WithContext(ctx).
		Where("module_id IN ?", moduleIDs).
		Order("sort_order ASC, id ASC").
		Find(&navModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list nav items: %w", err)
	}

	navByModule := make(map[uint][]*models.NavItemModel)
	for _, item := range navModels {
		navByModule[item.ModuleID] = append(navByModule[item.ModuleID], item)
	}

	entities := make([]*catalog.Module, 0, len(moduleModels))
	for _, model := range moduleModels {
		entity, err := r.moduleMapper.ToEntity(model, navByModule[model.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to map module model to entity: %w", err)
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *CatalogRepositoryImpl) GetModuleByID(ctx context.Context, id uint) (*catalog.Module, error) {
	var model models.ModuleModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get module by ID: %w", err)
	}

	return r.loadModule(ctx, &model)
}

func (r *CatalogRepositoryImpl) GetModuleByCode(ctx context.Context, code catalog.Code) (*catalog.Module, error) {
	var model models.ModuleModel

	if err := r.db.WithContext(ctx).Where("code = ?", code.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get module by code: %w", err)
	}

	return r.loadModule(ctx, &model)
}

func (r *CatalogRepositoryImpl) loadModule(ctx context.Context, model *models.ModuleModel) (*catalog.Module, error) {
	var navModels []*models.NavItemModel
	if err := r.db.WithContext(ctx).
		Where("module_id = ?", model.ID).
		Order("sort_order ASC, id ASC").
		Find(&navModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list nav items: %w", err)
	}

	entity, err := r.moduleMapper.ToEntity(model, navModels)
	if err != nil {
		return nil, fmt.Errorf("failed to map module model to entity: %w", err)
	}

	return entity, nil
}

func (r *CatalogRepositoryImpl) ListTenantModules(ctx context.Context, tenantID uint) ([]*catalog.TenantModule, error) {
	var tmModels []*models.TenantModuleModel
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&tmModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenant modules: %w", err)
	}

	entities, err := r.tmMapper.ToEntities(tmModels)
	if err != nil {
		return nil, fmt.Errorf("failed to map tenant module models to entities: %w", err)
	}

	return entities, nil
}

func (r *CatalogRepositoryImpl) GetTenantModule(ctx context.Context, tenantID, moduleID uint) (*catalog.TenantModule, error) {
	var model models.TenantModuleModel

	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND module_id = ?", tenantID, moduleID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant module: %w", err)
	}

	entity, err := r.tmMapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map tenant module model to entity: %w", err)
	}

	return entity, nil
}

func (r *CatalogRepositoryImpl) SaveTenantModule(ctx context.Context, tm *catalog.TenantModule) error {
	model, err := r.tmMapper.ToModel(tm)
	if err != nil {
		return fmt.Errorf("failed to map tenant module entity to model: %w", err)
	}

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create tenant module: %w", err)
		}
		if err := tm.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set tenant module ID: %w", err)
		}
		return nil
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update tenant module: %w", err)
	}

	return nil
}
