package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type PermissionModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100;uniqueIndex:idx_permission_module"`
	ModuleID    uint   `gorm:"not null;uniqueIndex:idx_permission_module;index"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PermissionModel) TableName() string {
	return constants.TablePermissions
}
