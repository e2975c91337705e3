package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
)

func TestEffectivePermissions_RoleUnion(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.User = testUser(t, 2, uintPtr(1), rbac.RoleUser, "DISPATCHER")
	snap.Modules[0].RoleGrants["DISPATCHER"] = []rbac.PermissionName{"fleet.view", "driver.view"}

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.True(t, set.Has("taxi.view"))
	assert.True(t, set.Has("fleet.view"))
	assert.True(t, set.Has("driver.view"))
	assert.False(t, set.Has("taxi.delete"))
}

func TestEffectivePermissions_GrantOutsideCatalogIgnored(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].RoleGrants[rbac.RoleUser] = append(
		snap.Modules[0].RoleGrants[rbac.RoleUser], "invoice.create")

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.False(t, set.Has("invoice.create"),
		"a grant not declared for the module's catalog must be ignored")
}

func TestEffectivePermissions_OverrideWidens(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.delete", true),
	}

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.True(t, set.Has("taxi.delete"))
}

func TestEffectivePermissions_OverrideNarrows(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.view", false),
	}

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.False(t, set.Has("taxi.view"),
		"an explicit revocation wins over the role grant")
}

func TestEffectivePermissions_ReplayOrderSensitive(t *testing.T) {
	grantThenRevoke := taxiSnapshot(t)
	grantThenRevoke.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.delete", true),
		override(t, 2, "taxi.delete", false),
	}
	assert.False(t, EffectivePermissions(grantThenRevoke, catalog.CodeTaxi).Has("taxi.delete"))

	revokeThenGrant := taxiSnapshot(t)
	revokeThenGrant.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.delete", false),
		override(t, 2, "taxi.delete", true),
	}
	assert.True(t, EffectivePermissions(revokeThenGrant, catalog.CodeTaxi).Has("taxi.delete"),
		"the last recorded override for a permission must win")
}

func TestEffectivePermissions_OverrideOutsideCatalogNoOp(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "invoice.create", true),
	}

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.False(t, set.Has("invoice.create"))
	assert.True(t, set.Has("taxi.view"), "the malformed override must not poison the rest")
}

func TestEffectivePermissions_NoRolesNoOverrides(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.User = testUser(t, 2, uintPtr(1))
	snap.Modules[0].Overrides = nil

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.Empty(t, set)
}

func TestEffectivePermissions_SuperAdminFullCatalog(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.User = testUser(t, 3, nil, rbac.RoleSuperAdmin)
	// Revocations must not touch the super admin short-circuit.
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.view", false),
	}

	set := EffectivePermissions(snap, catalog.CodeTaxi)

	assert.Len(t, set, len(snap.Modules[0].Catalog))
	assert.True(t, set.Has("taxi.view"))
	assert.True(t, set.Has("taxi.delete"))
}

func TestEffectivePermissions_UnknownModule(t *testing.T) {
	snap := taxiSnapshot(t)

	set := EffectivePermissions(snap, catalog.CodeFinance)

	assert.Empty(t, set)
}

func TestPermissionSet_Names_Sorted(t *testing.T) {
	set := PermissionSet{
		"taxi.view":   {},
		"driver.view": {},
		"fleet.view":  {},
	}

	names := set.Names()

	assert.Equal(t, []rbac.PermissionName{"driver.view", "fleet.view", "taxi.view"}, names)
}
