package rbac

import (
	"fmt"
	"time"
)

// Override is a per-user, per-module permission grant or revocation.
// Overrides take precedence over role defaults and are replayed in the
// order they were recorded, so later writes win.
type Override struct {
	id         uint
	userID     uint
	moduleID   uint
	permission PermissionName
	granted    bool
	createdAt  time.Time
}

// NewOverride records a grant (granted=true) or revocation (granted=false)
func NewOverride(userID, moduleID uint, permission PermissionName, granted bool) (*Override, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if moduleID == 0 {
		return nil, fmt.Errorf("module ID is required")
	}
	if !permission.IsValid() {
		return nil, fmt.Errorf("invalid permission name: %q", permission)
	}

	return &Override{
		userID:     userID,
		moduleID:   moduleID,
		permission: permission,
		granted:    granted,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructOverride reconstructs an override from persistence
func ReconstructOverride(id, userID, moduleID uint, permission PermissionName, granted bool, createdAt time.Time) (*Override, error) {
	if id == 0 {
		return nil, fmt.Errorf("override ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if moduleID == 0 {
		return nil, fmt.Errorf("module ID is required")
	}

	return &Override{
		id:         id,
		userID:     userID,
		moduleID:   moduleID,
		permission: permission,
		granted:    granted,
		createdAt:  createdAt,
	}, nil
}

func (o *Override) ID() uint {
	return o.id
}

func (o *Override) UserID() uint {
	return o.userID
}

func (o *Override) ModuleID() uint {
	return o.moduleID
}

func (o *Override) Permission() PermissionName {
	return o.permission
}

func (o *Override) Granted() bool {
	return o.granted
}

func (o *Override) CreatedAt() time.Time {
	return o.createdAt
}

// SetID sets the override ID (only for persistence layer use)
func (o *Override) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("override ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("override ID cannot be zero")
	}
	o.id = id
	return nil
}
