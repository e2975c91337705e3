package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type NavItemModel struct {
	ID             uint   `gorm:"primarykey"`
	ModuleID       uint   `gorm:"not null;index"`
	Label          string `gorm:"not null;size:80"`
	Route          string `gorm:"size:120"`
	Icon           string `gorm:"size:60"`
	ViewPermission string `gorm:"not null;size:100"`
	SortOrder      int    `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (NavItemModel) TableName() string {
	return constants.TableNavItems
}
