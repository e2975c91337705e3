package access

import (
	"strings"
	"time"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
)

// ActionView is the action gating module visibility in navigation.
const ActionView = "view"

// RequiredPermission maps a (module, action) pair to the permission
// name the decision checks. An action already in "resource.verb" form
// is used as-is so callers can check fine-grained capabilities such as
// "invoice.create"; a bare verb is qualified with the module's
// resource name ("view" on TAXI becomes "taxi.view").
func RequiredPermission(code catalog.Code, action string) rbac.PermissionName {
	if strings.ContainsRune(action, '.') {
		return rbac.PermissionName(action)
	}
	return rbac.PermissionName(strings.ToLower(code.String()) + "." + action)
}

// Decide evaluates whether the snapshot's user may perform the action
// on the module. Checks run in a fixed order and the first failing
// check determines the reason:
//
//  1. TENANT_INACTIVE - the tenant's subscription does not admit
//     access. Skipped only for platform-scoped SUPER_ADMIN users with
//     no tenant; a super admin acting inside a tenant context is still
//     gated by that tenant's subscription.
//  2. MODULE_DISABLED - the module is globally off, the tenant never
//     opted in, or the opt-in was deactivated. Evaluated before
//     permissions so a hidden module never leaks through a
//     permission-shaped error. SUPER_ADMIN bypasses this check.
//  3. PERMISSION_DENIED - the action's required permission is missing
//     from the user's effective set for the module.
//
// The decision is stateless and idempotent: equal inputs produce equal
// results until the underlying entitlement data changes.
func Decide(snap *Snapshot, code catalog.Code, action string, now time.Time) Decision {
	platformSuperAdmin := snap.User != nil && snap.User.IsSuperAdmin() && snap.Tenant == nil

	if !platformSuperAdmin && !TenantActive(snap.Tenant, now) {
		return Deny(ReasonTenantInactive)
	}

	me := snap.FindModule(code)
	if me == nil {
		return Deny(ReasonModuleDisabled)
	}

	superAdmin := snap.User != nil && snap.User.IsSuperAdmin()

	if !superAdmin {
		if !me.Module.ActiveGlobally() || !me.TenantEnabled {
			return Deny(ReasonModuleDisabled)
		}
	}

	if !superAdmin {
		required := RequiredPermission(code, action)
		if !EffectivePermissions(snap, code).Has(required) {
			return Deny(ReasonPermissionDenied)
		}
	}

	return Allow()
}
