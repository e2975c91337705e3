package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type UserRoleModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_role"`
	RoleID    uint `gorm:"not null;uniqueIndex:idx_user_role"`
	CreatedAt time.Time
}

func (UserRoleModel) TableName() string {
	return constants.TableUserRoles
}
