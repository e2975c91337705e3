package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type TenantModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"not null;size:120"`
	Slug          string `gorm:"uniqueIndex;not null;size:60"`
	Status        string `gorm:"not null;default:active;size:20"`
	PlanExpiresAt *time.Time
	Metadata      datatypes.JSONMap `gorm:"type:json"`
	Version       int               `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TenantModel) TableName() string {
	return constants.TableTenants
}
