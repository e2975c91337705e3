package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/domain/catalog"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

type seedModule struct {
	code      catalog.Code
	name      string
	icon      string
	route     string
	sortOrder int
	navItems  []seedNavItem
	verbs     []string
}

type seedNavItem struct {
	label          string
	route          string
	icon           string
	viewPermission string
}

// seedCatalog is the product catalog in curated order. The sort order
// here, not the name, drives navigation.
var seedCatalog = []seedModule{
	{
		code: catalog.CodeCommerce, name: "Commerce", icon: "shopping-cart", route: "/commerce", sortOrder: 10,
		navItems: []seedNavItem{
			{label: "Products", route: "/commerce/products", icon: "package", viewPermission: "commerce.view"},
			{label: "Orders", route: "/commerce/orders", icon: "receipt", viewPermission: "commerce.view"},
			{label: "Pricing", route: "/commerce/pricing", icon: "tag", viewPermission: "commerce.manage"},
		},
		verbs: []string{"view", "create", "edit", "delete", "manage"},
	},
	{
		code: catalog.CodeRealEstate, name: "Real Estate", icon: "building", route: "/realestate", sortOrder: 20,
		navItems: []seedNavItem{
			{label: "Listings", route: "/realestate/listings", icon: "home", viewPermission: "realestate.view"},
			{label: "Contracts", route: "/realestate/contracts", icon: "file-text", viewPermission: "realestate.manage"},
		},
		verbs: []string{"view", "create", "edit", "delete", "manage"},
	},
	{
		code: catalog.CodeTaxi, name: "Taxi", icon: "car", route: "/taxi", sortOrder: 30,
		navItems: []seedNavItem{
			{label: "Rides", route: "/taxi/rides", icon: "map", viewPermission: "taxi.view"},
			{label: "Drivers", route: "/taxi/drivers", icon: "users", viewPermission: "taxi.manage"},
		},
		verbs: []string{"view", "create", "edit", "delete", "manage"},
	},
	{
		code: catalog.CodeFinance, name: "Finance", icon: "credit-card", route: "/finance", sortOrder: 40,
		navItems: []seedNavItem{
			{label: "Invoices", route: "/finance/invoices", icon: "file", viewPermission: "invoice.view"},
			{label: "Reports", route: "/finance/reports", icon: "bar-chart", viewPermission: "finance.view"},
		},
		verbs: []string{"view", "manage"},
	},
	{
		code: catalog.CodeStatistics, name: "Statistics", icon: "trending-up", route: "/statistics", sortOrder: 50,
		navItems: []seedNavItem{
			{label: "Dashboard", route: "/statistics/dashboard", icon: "activity", viewPermission: "statistics.view"},
		},
		verbs: []string{"view"},
	},
	{
		code: catalog.CodeAdmin, name: "Administration", icon: "settings", route: "/admin", sortOrder: 60,
		navItems: []seedNavItem{
			{label: "Users", route: "/admin/users", icon: "users", viewPermission: "admin.manage"},
			{label: "Modules", route: "/admin/modules", icon: "grid", viewPermission: "admin.manage"},
		},
		verbs: []string{"view", "manage"},
	},
}

// Seed populates the module catalog, the permission catalog and the
// built-in roles. It is idempotent; existing rows are left untouched.
func Seed(db *gorm.DB) error {
	log := logger.NewLogger().Named("migration.seed")

	if err := db.Transaction(func(tx *gorm.DB) error {
		permsByModule, err := seedModulesAndPermissions(tx)
		if err != nil {
			return err
		}
		return seedRoles(tx, permsByModule)
	}); err != nil {
		return err
	}

	log.Infow("seed completed", "modules", len(seedCatalog))
	return nil
}

func seedModulesAndPermissions(tx *gorm.DB) (map[uint][]models.PermissionModel, error) {
	permsByModule := make(map[uint][]models.PermissionModel)

	for _, sm := range seedCatalog {
		module := models.ModuleModel{Code: sm.code.String()}
		if err := tx.Where("code = ?", sm.code.String()).
			Attrs(models.ModuleModel{
				Name:           sm.name,
				Icon:           sm.icon,
				Route:          sm.route,
				SortOrder:      sm.sortOrder,
				ActiveGlobally: true,
			}).
			FirstOrCreate(&module).Error; err != nil {
			return nil, fmt.Errorf("failed to seed module %s: %w", sm.code, err)
		}

		for i, item := range sm.navItems {
			nav := models.NavItemModel{ModuleID: module.ID, Label: item.label}
			if err := tx.Where("module_id = ? AND label = ?", module.ID, item.label).
				Attrs(models.NavItemModel{
					Route:          item.route,
					Icon:           item.icon,
					ViewPermission: item.viewPermission,
					SortOrder:      (i + 1) * 10,
				}).
				FirstOrCreate(&nav).Error; err != nil {
				return nil, fmt.Errorf("failed to seed nav item %s: %w", item.label, err)
			}
		}

		names := permissionNames(sm)
		for _, name := range names {
			perm := models.PermissionModel{Name: name, ModuleID: module.ID}
			if err := tx.Where("name = ? AND module_id = ?", name, module.ID).
				FirstOrCreate(&perm).Error; err != nil {
				return nil, fmt.Errorf("failed to seed permission %s: %w", name, err)
			}
			permsByModule[module.ID] = append(permsByModule[module.ID], perm)
		}
	}

	return permsByModule, nil
}

// permissionNames expands a module's verbs into permission names and
// adds the nav item permissions that fall outside the verb convention
// (e.g. "invoice.view" under FINANCE).
func permissionNames(sm seedModule) []string {
	resource := strings.ToLower(sm.code.String())
	seen := make(map[string]struct{})
	names := make([]string, 0, len(sm.verbs)+len(sm.navItems))

	for _, verb := range sm.verbs {
		name := resource + "." + verb
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, item := range sm.navItems {
		if _, ok := seen[item.viewPermission]; !ok {
			seen[item.viewPermission] = struct{}{}
			names = append(names, item.viewPermission)
		}
	}

	if sm.code == catalog.CodeFinance {
		for _, extra := range []string{"invoice.create", "invoice.manage"} {
			if _, ok := seen[extra]; !ok {
				seen[extra] = struct{}{}
				names = append(names, extra)
			}
		}
	}

	return names
}

func seedRoles(tx *gorm.DB, permsByModule map[uint][]models.PermissionModel) error {
	roleDescriptions := map[string]string{
		rbac.RoleSuperAdmin: "Platform operator with unrestricted access",
		rbac.RoleAdmin:      "Tenant administrator",
		rbac.RoleUser:       "Regular tenant member",
		rbac.RoleAnonymous:  "Unauthenticated visitor",
	}

	roles := make(map[string]models.RoleModel)
	for _, name := range []string{rbac.RoleSuperAdmin, rbac.RoleAdmin, rbac.RoleUser, rbac.RoleAnonymous} {
		role := models.RoleModel{Name: name}
		if err := tx.Where("name = ? AND tenant_id IS NULL", name).
			Attrs(models.RoleModel{Description: roleDescriptions[name]}).
			FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
		roles[name] = role
	}

	// SUPER_ADMIN needs no grants: the resolver short-circuits it to
	// the full catalog. ADMIN receives every permission, USER the view
	// permissions, ANONYMOUS only the statistics dashboard.
	for _, perms := range permsByModule {
		for _, perm := range perms {
			if err := grant(tx, roles[rbac.RoleAdmin].ID, perm.ID); err != nil {
				return err
			}
			if strings.HasSuffix(perm.Name, ".view") {
				if err := grant(tx, roles[rbac.RoleUser].ID, perm.ID); err != nil {
					return err
				}
			}
			if perm.Name == "statistics.view" {
				if err := grant(tx, roles[rbac.RoleAnonymous].ID, perm.ID); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func grant(tx *gorm.DB, roleID, permissionID uint) error {
	link := models.RolePermissionModel{RoleID: roleID, PermissionID: permissionID}
	if err := tx.Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		FirstOrCreate(&link).Error; err != nil {
		return fmt.Errorf("failed to seed role grant: %w", err)
	}
	return nil
}
