package migration

import (
	"github.com/atriumhq/atrium/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TenantModel{},
		&models.ModuleModel{},
		&models.NavItemModel{},
		&models.TenantModuleModel{},
		&models.RoleModel{},
		&models.PermissionModel{},
		&models.RolePermissionModel{},
		&models.UserModel{},
		&models.UserRoleModel{},
		&models.UserModulePermissionModel{},
	}
}
