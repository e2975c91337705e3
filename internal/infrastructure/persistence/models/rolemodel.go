package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type RoleModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:50;uniqueIndex:idx_role_name_tenant"`
	TenantID    *uint  `gorm:"uniqueIndex:idx_role_name_tenant"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
