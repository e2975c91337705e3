package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type ModuleModel struct {
	ID             uint   `gorm:"primarykey"`
	Code           string `gorm:"uniqueIndex;not null;size:30"`
	Name           string `gorm:"not null;size:80"`
	Icon           string `gorm:"size:60"`
	Route          string `gorm:"size:120"`
	SortOrder      int    `gorm:"not null;default:0;index"`
	ActiveGlobally bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ModuleModel) TableName() string {
	return constants.TableModules
}
