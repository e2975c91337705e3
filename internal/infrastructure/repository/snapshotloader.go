package repository

import (
	"context"
	"fmt"

	"github.com/atriumhq/atrium/internal/domain/access"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/domain/user"
	"github.com/atriumhq/atrium/internal/shared/errors"
)

// SnapshotLoader assembles entitlement snapshots for the access engine
// from the tenant, catalog, rbac and user repositories. Every call
// reads current state; nothing is cached between requests, so expired
// subscriptions and fresh overrides take effect on the next decision.
type SnapshotLoader struct {
	tenantRepo  tenant.Repository
	catalogRepo catalog.Repository
	rbacRepo    rbac.Repository
	userRepo    user.Repository
}

func NewSnapshotLoader(
	tenantRepo tenant.Repository,
	catalogRepo catalog.Repository,
	rbacRepo rbac.Repository,
	userRepo user.Repository,
) access.Loader {
	return &SnapshotLoader{
		tenantRepo:  tenantRepo,
		catalogRepo: catalogRepo,
		rbacRepo:    rbacRepo,
		userRepo:    userRepo,
	}
}

func (l *SnapshotLoader) LoadForUser(ctx context.Context, userID uint) (*access.Snapshot, error) {
	u, err := l.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var t *tenant.Tenant
	if u.TenantID() != nil {
		t, err = l.loadTenant(ctx, *u.TenantID())
		if err != nil {
			return nil, err
		}
	}

	return l.build(ctx, t, u)
}

func (l *SnapshotLoader) LoadForUserInTenant(ctx context.Context, userID, tenantID uint) (*access.Snapshot, error) {
	u, err := l.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.TenantID() != nil && *u.TenantID() != tenantID {
		return nil, errors.NewForbiddenError("user does not belong to tenant")
	}

	t, err := l.loadTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return l.build(ctx, t, u)
}

func (l *SnapshotLoader) LoadAnonymous(ctx context.Context, tenantID uint) (*access.Snapshot, error) {
	t, err := l.loadTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return l.build(ctx, t, user.Anonymous(tenantID))
}

func (l *SnapshotLoader) loadUser(ctx context.Context, userID uint) (*user.User, error) {
	u, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (l *SnapshotLoader) loadTenant(ctx context.Context, tenantID uint) (*tenant.Tenant, error) {
	t, err := l.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("tenant not found")
	}
	return t, nil
}

func (l *SnapshotLoader) build(ctx context.Context, t *tenant.Tenant, u *user.User) (*access.Snapshot, error) {
	modules, err := l.catalogRepo.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load module catalog: %w", err)
	}

	enabled := make(map[uint]bool)
	if t != nil {
		tenantModules, err := l.catalogRepo.ListTenantModules(ctx, t.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load tenant modules: %w", err)
		}
		for _, tm := range tenantModules {
			enabled[tm.ModuleID()] = tm.IsActive()
		}
	}

	roles, err := l.loadRoles(ctx, u)
	if err != nil {
		return nil, err
	}

	entitlements := make([]access.ModuleEntitlement, 0, len(modules))
	for _, m := range modules {
		me, err := l.buildEntitlement(ctx, m, u, roles, enabled[m.ID()])
		if err != nil {
			return nil, err
		}
		entitlements = append(entitlements, *me)
	}

	return &access.Snapshot{
		Tenant:  t,
		User:    u,
		Modules: entitlements,
	}, nil
}

// loadRoles resolves the role rows behind the user's role names. The
// anonymous principal has no persisted user row, so its single role is
// looked up by name instead of through the join table.
func (l *SnapshotLoader) loadRoles(ctx context.Context, u *user.User) ([]*rbac.Role, error) {
	if u.ID() != 0 {
		roles, err := l.rbacRepo.ListRolesForUser(ctx, u.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load user roles: %w", err)
		}
		return roles, nil
	}

	roles := make([]*rbac.Role, 0, len(u.RoleNames()))
	for _, name := range u.RoleNames() {
		role, err := l.rbacRepo.GetRoleByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load role %s: %w", name, err)
		}
		if role != nil {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

func (l *SnapshotLoader) buildEntitlement(
	ctx context.Context,
	m *catalog.Module,
	u *user.User,
	roles []*rbac.Role,
	tenantEnabled bool,
) (*access.ModuleEntitlement, error) {
	permissions, err := l.rbacRepo.ListModulePermissions(ctx, m.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions for module %s: %w", m.Code(), err)
	}

	names := make([]rbac.PermissionName, 0, len(permissions))
	for _, p := range permissions {
		names = append(names, p.Name())
	}

	grants := make(map[string][]rbac.PermissionName, len(roles))
	for _, role := range roles {
		granted, err := l.rbacRepo.ListRolePermissions(ctx, role.ID(), m.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load grants for role %s: %w", role.Name(), err)
		}
		grants[role.Name()] = granted
	}

	var overrides []*rbac.Override
	if u.ID() != 0 {
		overrides, err = l.rbacRepo.ListOverrides(ctx, u.ID(), m.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load overrides for module %s: %w", m.Code(), err)
		}
	}

	return &access.ModuleEntitlement{
		Module:        m,
		TenantEnabled: tenantEnabled,
		RoleGrants:    grants,
		Overrides:     overrides,
		Catalog:       names,
	}, nil
}
