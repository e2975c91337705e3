package catalog

import "context"

// Repository defines the persistence contract for the module catalog
// and tenant-level module enablement. ListModules returns the catalog
// in curated sort order; navigation depends on that ordering.
type Repository interface {
	ListModules(ctx context.Context) ([]*Module, error)
	GetModuleByID(ctx context.Context, id uint) (*Module, error)
	GetModuleByCode(ctx context.Context, code Code) (*Module, error)

	ListTenantModules(ctx context.Context, tenantID uint) ([]*TenantModule, error)
	GetTenantModule(ctx context.Context, tenantID, moduleID uint) (*TenantModule, error)
	SaveTenantModule(ctx context.Context, tm *TenantModule) error
}
