package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

// UserModulePermissionModel stores per-user overrides. Rows are
// append-only and replayed in primary key order, so there is no unique
// index on (user, module, permission).
type UserModulePermissionModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;index:idx_user_module"`
	ModuleID   uint   `gorm:"not null;index:idx_user_module"`
	Permission string `gorm:"not null;size:100"`
	Granted    bool   `gorm:"not null"`
	CreatedAt  time.Time
}

func (UserModulePermissionModel) TableName() string {
	return constants.TableUserModulePermissions
}
