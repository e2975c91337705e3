package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type TenantModuleModel struct {
	ID        uint `gorm:"primarykey"`
	TenantID  uint `gorm:"not null;uniqueIndex:idx_tenant_module"`
	ModuleID  uint `gorm:"not null;uniqueIndex:idx_tenant_module"`
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TenantModuleModel) TableName() string {
	return constants.TableTenantModules
}
