package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type RolePermissionModel struct {
	ID           uint `gorm:"primarykey"`
	RoleID       uint `gorm:"not null;uniqueIndex:idx_role_permission"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_role_permission"`
	CreatedAt    time.Time
}

func (RolePermissionModel) TableName() string {
	return constants.TableRolePermissions
}
