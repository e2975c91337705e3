package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
)

func TestRequiredPermission(t *testing.T) {
	assert.Equal(t, rbac.PermissionName("taxi.view"), RequiredPermission(catalog.CodeTaxi, "view"))
	assert.Equal(t, rbac.PermissionName("finance.delete"), RequiredPermission(catalog.CodeFinance, "delete"))
	assert.Equal(t, rbac.PermissionName("invoice.create"), RequiredPermission(catalog.CodeFinance, "invoice.create"),
		"an action already in resource.verb form is used as-is")
}

func TestDecide_AllowedAction(t *testing.T) {
	snap := taxiSnapshot(t)

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
}

func TestDecide_PermissionDenied(t *testing.T) {
	snap := taxiSnapshot(t)

	d := Decide(snap, catalog.CodeTaxi, "delete", testNow)

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonPermissionDenied, d.Reason)
}

func TestDecide_SuspendedTenantDeniesEverything(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Tenant = tenantWithStatus(t, vo.StatusSuspended, nil)

	for _, action := range []string{"view", "delete"} {
		d := Decide(snap, catalog.CodeTaxi, action, testNow)
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonTenantInactive, d.Reason, "action %s", action)
	}
}

func TestDecide_ExpiredPlanDenies(t *testing.T) {
	past := testNow.Add(-time.Hour)
	snap := taxiSnapshot(t)
	snap.Tenant = tenantWithStatus(t, vo.StatusActive, &past)

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.Equal(t, ReasonTenantInactive, d.Reason)
}

func TestDecide_ModuleDisabledForTenant(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].TenantEnabled = false
	// Even with every permission granted, tenant gating dominates.
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.view", true),
		override(t, 2, "taxi.delete", true),
	}

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonModuleDisabled, d.Reason)
}

func TestDecide_ModuleDisabledGlobally(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].Module = testModule(t, 1, catalog.CodeTaxi, 1, false, nil)

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.Equal(t, ReasonModuleDisabled, d.Reason)
}

func TestDecide_UnknownModule(t *testing.T) {
	snap := taxiSnapshot(t)

	d := Decide(snap, catalog.CodeFinance, "view", testNow)

	assert.Equal(t, ReasonModuleDisabled, d.Reason,
		"a module absent from the snapshot must look disabled, not permission-denied")
}

func TestDecide_DisabledModuleDoesNotLeakPermissionState(t *testing.T) {
	// The same deny reason regardless of whether the user would have
	// had the permission.
	withPerm := taxiSnapshot(t)
	withPerm.Modules[0].TenantEnabled = false

	withoutPerm := taxiSnapshot(t)
	withoutPerm.Modules[0].TenantEnabled = false
	withoutPerm.Modules[0].RoleGrants = nil

	assert.Equal(t,
		Decide(withPerm, catalog.CodeTaxi, "view", testNow),
		Decide(withoutPerm, catalog.CodeTaxi, "view", testNow))
}

func TestDecide_RevokedOverrideDenies(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.view", false),
	}

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.Equal(t, ReasonPermissionDenied, d.Reason)
}

func TestDecide_PlatformSuperAdmin(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Tenant = nil
	snap.User = testUser(t, 3, nil, rbac.RoleSuperAdmin)
	snap.Modules[0].TenantEnabled = false
	snap.Modules[0].RoleGrants = nil

	d := Decide(snap, catalog.CodeTaxi, "delete", testNow)

	assert.True(t, d.Allowed,
		"a platform-scoped super admin bypasses module and permission gating")
}

func TestDecide_SuperAdminInTenantContextStillGated(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Tenant = tenantWithStatus(t, vo.StatusSuspended, nil)
	snap.User = testUser(t, 3, nil, rbac.RoleSuperAdmin)

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonTenantInactive, d.Reason,
		"the subscription gate applies to super admins acting inside a tenant")
}

func TestDecide_NonSuperAdminWithoutTenantDenied(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Tenant = nil

	d := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.Equal(t, ReasonTenantInactive, d.Reason)
}

func TestDecide_Idempotent(t *testing.T) {
	snap := taxiSnapshot(t)

	first := Decide(snap, catalog.CodeTaxi, "view", testNow)
	second := Decide(snap, catalog.CodeTaxi, "view", testNow)

	assert.Equal(t, first, second)
}

func TestDecide_FineGrainedAction(t *testing.T) {
	snap := taxiSnapshot(t)
	snap.Modules[0].Catalog = append(snap.Modules[0].Catalog, "driver.create")
	snap.Modules[0].RoleGrants[rbac.RoleUser] = append(
		snap.Modules[0].RoleGrants[rbac.RoleUser], "driver.create")

	assert.True(t, Decide(snap, catalog.CodeTaxi, "driver.create", testNow).Allowed)
	assert.False(t, Decide(snap, catalog.CodeTaxi, "driver.delete", testNow).Allowed)
}
