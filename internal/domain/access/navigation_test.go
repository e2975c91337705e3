package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
)

// multiModuleSnapshot builds a tenant with TAXI and FINANCE enabled
// and STATISTICS not opted in. The user can view TAXI (and one of its
// children) and FINANCE (no children).
func multiModuleSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	taxi := testModule(t, 1, catalog.CodeTaxi, 1, true, []catalog.NavItem{
		{Label: "Fleet", Route: "/taxi/fleet", ViewPermission: "fleet.view"},
		{Label: "Drivers", Route: "/taxi/drivers", ViewPermission: "driver.view"},
	})
	finance := testModule(t, 2, catalog.CodeFinance, 2, true, []catalog.NavItem{
		{Label: "Invoices", Route: "/finance/invoices", ViewPermission: "invoice.view"},
	})
	stats := testModule(t, 3, catalog.CodeStatistics, 3, true, nil)

	return &Snapshot{
		Tenant: activeTenant(t),
		User:   testUser(t, 2, uintPtr(1), rbac.RoleUser),
		Modules: []ModuleEntitlement{
			{
				Module:        taxi,
				TenantEnabled: true,
				RoleGrants: map[string][]rbac.PermissionName{
					rbac.RoleUser: {"taxi.view", "fleet.view"},
				},
				Catalog: []rbac.PermissionName{"taxi.view", "fleet.view", "driver.view"},
			},
			{
				Module:        finance,
				TenantEnabled: true,
				RoleGrants: map[string][]rbac.PermissionName{
					rbac.RoleUser: {"finance.view"},
				},
				Catalog: []rbac.PermissionName{"finance.view", "invoice.view"},
			},
			{
				Module:        stats,
				TenantEnabled: false,
				RoleGrants: map[string][]rbac.PermissionName{
					rbac.RoleUser: {"statistics.view"},
				},
				Catalog: []rbac.PermissionName{"statistics.view"},
			},
		},
	}
}

func TestBuildMenu_FiltersAndOrders(t *testing.T) {
	snap := multiModuleSnapshot(t)

	menu := BuildMenu(snap, testNow)

	require.Len(t, menu, 2)
	assert.Equal(t, "TAXI", menu[0].ModuleCode)
	assert.Equal(t, "FINANCE", menu[1].ModuleCode)
}

func TestBuildMenu_ChildFiltering(t *testing.T) {
	snap := multiModuleSnapshot(t)

	menu := BuildMenu(snap, testNow)

	require.Len(t, menu, 2)
	require.Len(t, menu[0].Children, 1)
	assert.Equal(t, "Fleet", menu[0].Children[0].Label)
}

func TestBuildMenu_ModuleWithNoVisibleChildrenStillAppears(t *testing.T) {
	snap := multiModuleSnapshot(t)

	menu := BuildMenu(snap, testNow)

	require.Len(t, menu, 2)
	assert.Equal(t, "FINANCE", menu[1].ModuleCode)
	assert.Empty(t, menu[1].Children,
		"the module landing page is itself content")
}

func TestBuildMenu_NeverIncludesDeniedModule(t *testing.T) {
	snap := multiModuleSnapshot(t)

	menu := BuildMenu(snap, testNow)

	for _, entry := range menu {
		d := Decide(snap, catalog.Code(entry.ModuleCode), ActionView, testNow)
		assert.True(t, d.Allowed, "menu included %s which decide denies", entry.ModuleCode)
	}
	assert.NotContains(t, moduleCodes(menu), "STATISTICS")
}

func TestBuildMenu_SuspendedTenantEmptyMenu(t *testing.T) {
	snap := multiModuleSnapshot(t)
	snap.Tenant = tenantWithStatus(t, vo.StatusSuspended, nil)

	menu := BuildMenu(snap, testNow)

	assert.Empty(t, menu)
}

func TestBuildMenu_SuperAdminSeesFullCatalogOfEnabledTenant(t *testing.T) {
	snap := multiModuleSnapshot(t)
	snap.User = testUser(t, 3, nil, rbac.RoleSuperAdmin)

	menu := BuildMenu(snap, testNow)

	assert.Equal(t, []string{"TAXI", "FINANCE", "STATISTICS"}, moduleCodes(menu))
	require.Len(t, menu[0].Children, 2, "super admin sees every child screen")
}

func TestBuildMenu_Idempotent(t *testing.T) {
	snap := multiModuleSnapshot(t)

	first := BuildMenu(snap, testNow)
	second := BuildMenu(snap, testNow)

	assert.Equal(t, first, second)
}

func TestBuildMenu_RevokedViewHidesModule(t *testing.T) {
	snap := multiModuleSnapshot(t)
	snap.Modules[0].Overrides = []*rbac.Override{
		override(t, 1, "taxi.view", false),
	}

	menu := BuildMenu(snap, testNow)

	assert.Equal(t, []string{"FINANCE"}, moduleCodes(menu))
}

func moduleCodes(menu []MenuEntry) []string {
	codes := make([]string, 0, len(menu))
	for _, e := range menu {
		codes = append(codes, e.ModuleCode)
	}
	return codes
}
