package rbac

import "context"

// Repository defines the persistence contract for roles, the
// permission catalog, and per-user overrides.
type Repository interface {
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	ListRolesForUser(ctx context.Context, userID uint) ([]*Role, error)

	// ListModulePermissions returns the permission catalog declared for
	// a module.
	ListModulePermissions(ctx context.Context, moduleID uint) ([]*Permission, error)

	// ListRolePermissions returns the permission names granted to a
	// role within a module's catalog.
	ListRolePermissions(ctx context.Context, roleID, moduleID uint) ([]PermissionName, error)

	// ListOverrides returns the user's overrides for a module in
	// insertion order. Replay semantics depend on that ordering.
	ListOverrides(ctx context.Context, userID, moduleID uint) ([]*Override, error)

	SaveOverride(ctx context.Context, override *Override) error
	DeleteOverride(ctx context.Context, id uint) error
}
