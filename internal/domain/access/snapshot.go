package access

import (
	"context"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	"github.com/atriumhq/atrium/internal/domain/user"
)

// Snapshot is an immutable per-request view of everything the engine
// needs to evaluate decisions: the user, their tenant, the module
// catalog in curated order, tenant-level enablement, role grants, and
// per-user overrides. The engine never fetches data; the loader builds
// a fresh snapshot for every decision or menu request so that stale
// overrides and expired subscriptions are re-read each call.
type Snapshot struct {
	// Tenant is nil for platform-scoped users (SUPER_ADMIN with no
	// tenant); every other user belongs to exactly one tenant.
	Tenant *tenant.Tenant

	User *user.User

	// Modules holds one entry per catalog module, in catalog sort
	// order. Navigation preserves this ordering.
	Modules []ModuleEntitlement
}

// ModuleEntitlement bundles the per-module facts for one snapshot.
type ModuleEntitlement struct {
	Module *catalog.Module

	// TenantEnabled is true only when a TenantModule association
	// exists and is active. A missing association and a deactivated
	// one are indistinguishable to the engine: both disable the module.
	TenantEnabled bool

	// RoleGrants maps role name to the permission names granted to
	// that role within this module.
	RoleGrants map[string][]rbac.PermissionName

	// Overrides are the user's overrides for this module in the order
	// they were recorded. Replay order is load-bearing.
	Overrides []*rbac.Override

	// Catalog is the full permission catalog declared for this module.
	Catalog []rbac.PermissionName
}

// Loader builds snapshots from current entitlement state. All I/O
// happens here, before the pure engine runs; a request deadline on ctx
// governs the fetch, not the computation.
type Loader interface {
	// LoadForUser returns a snapshot for the given user. It returns a
	// not-found error when the user, or the tenant the user references,
	// does not exist; the engine never synthesizes defaults.
	LoadForUser(ctx context.Context, userID uint) (*Snapshot, error)

	// LoadForUserInTenant returns a snapshot for a user acting inside
	// a specific tenant context. Platform-scoped super admins use this
	// when operating on behalf of a tenant; the tenant's subscription
	// gate applies to them there.
	LoadForUserInTenant(ctx context.Context, userID, tenantID uint) (*Snapshot, error)

	// LoadAnonymous returns a snapshot for an unauthenticated request
	// against a tenant, evaluated under the ANONYMOUS role.
	LoadAnonymous(ctx context.Context, tenantID uint) (*Snapshot, error)
}

// FindModule returns the entitlement entry for a module code, or nil
// when the code is not part of the snapshot's catalog.
func (s *Snapshot) FindModule(code catalog.Code) *ModuleEntitlement {
	for i := range s.Modules {
		if s.Modules[i].Module.Code() == code {
			return &s.Modules[i]
		}
	}
	return nil
}

// inCatalog reports whether the permission name is declared for the module
func (me *ModuleEntitlement) inCatalog(name rbac.PermissionName) bool {
	for _, p := range me.Catalog {
		if p == name {
			return true
		}
	}
	return false
}
