package models

import (
	"time"

	"github.com/atriumhq/atrium/internal/shared/constants"
)

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:120"`
	PasswordHash string `gorm:"not null;size:255"`
	TenantID     *uint  `gorm:"index"`
	Status       string `gorm:"not null;default:active;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
