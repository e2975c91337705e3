package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/domain/tenant"
	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
	"github.com/atriumhq/atrium/internal/domain/user"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func activeTenant(t *testing.T) *tenant.Tenant {
	t.Helper()
	return tenantWithStatus(t, vo.StatusActive, nil)
}

func tenantWithStatus(t *testing.T, status vo.SubscriptionStatus, planExpiresAt *time.Time) *tenant.Tenant {
	t.Helper()
	tn, err := tenant.ReconstructTenant(1, "Acme Corp", "acme", status, planExpiresAt, nil, 1, testNow, testNow)
	require.NoError(t, err)
	return tn
}

func testModule(t *testing.T, id uint, code catalog.Code, sortOrder int, activeGlobally bool, navItems []catalog.NavItem) *catalog.Module {
	t.Helper()
	m, err := catalog.ReconstructModule(id, code, string(code), "icon-"+string(code), "/"+string(code), sortOrder, activeGlobally, navItems, testNow, testNow)
	require.NoError(t, err)
	return m
}

func testUser(t *testing.T, id uint, tenantID *uint, roles ...string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "user@acme.test", "Test User", "hash", tenantID, roles, user.StatusActive, testNow, testNow)
	require.NoError(t, err)
	return u
}

func override(t *testing.T, id uint, name rbac.PermissionName, granted bool) *rbac.Override {
	t.Helper()
	o, err := rbac.ReconstructOverride(id, 2, 1, name, granted, testNow)
	require.NoError(t, err)
	return o
}

func uintPtr(v uint) *uint {
	return &v
}

// taxiSnapshot builds the canonical fixture: tenant Acme with the TAXI
// module enabled, the member user holding the USER role granted
// taxi.view only.
func taxiSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	taxi := testModule(t, 1, catalog.CodeTaxi, 1, true, []catalog.NavItem{
		{Label: "Fleet", Route: "/taxi/fleet", ViewPermission: "fleet.view"},
		{Label: "Drivers", Route: "/taxi/drivers", ViewPermission: "driver.view"},
	})

	return &Snapshot{
		Tenant: activeTenant(t),
		User:   testUser(t, 2, uintPtr(1), rbac.RoleUser),
		Modules: []ModuleEntitlement{
			{
				Module:        taxi,
				TenantEnabled: true,
				RoleGrants: map[string][]rbac.PermissionName{
					rbac.RoleUser: {"taxi.view"},
				},
				Catalog: []rbac.PermissionName{"taxi.view", "taxi.delete", "fleet.view", "driver.view"},
			},
		},
	}
}
