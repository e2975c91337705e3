package catalog

import (
	"fmt"
	"time"
)

// TenantModule is the tenant-level opt-in for a catalog module.
// A module is usable by a tenant only when the module is globally
// active, this association exists, and it is active.
type TenantModule struct {
	id        uint
	tenantID  uint
	moduleID  uint
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewTenantModule opts a tenant into a module
func NewTenantModule(tenantID, moduleID uint) (*TenantModule, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if moduleID == 0 {
		return nil, fmt.Errorf("module ID is required")
	}

	now := time.Now()
	return &TenantModule{
		tenantID:  tenantID,
		moduleID:  moduleID,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTenantModule reconstructs the association from persistence
func ReconstructTenantModule(id, tenantID, moduleID uint, active bool, createdAt, updatedAt time.Time) (*TenantModule, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant module ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if moduleID == 0 {
		return nil, fmt.Errorf("module ID is required")
	}

	return &TenantModule{
		id:        id,
		tenantID:  tenantID,
		moduleID:  moduleID,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (tm *TenantModule) ID() uint {
	return tm.id
}

func (tm *TenantModule) TenantID() uint {
	return tm.tenantID
}

func (tm *TenantModule) ModuleID() uint {
	return tm.moduleID
}

func (tm *TenantModule) IsActive() bool {
	return tm.active
}

func (tm *TenantModule) CreatedAt() time.Time {
	return tm.createdAt
}

func (tm *TenantModule) UpdatedAt() time.Time {
	return tm.updatedAt
}

// SetID sets the association ID (only for persistence layer use)
func (tm *TenantModule) SetID(id uint) error {
	if tm.id != 0 {
		return fmt.Errorf("tenant module ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant module ID cannot be zero")
	}
	tm.id = id
	return nil
}

// Activate re-enables the module for the tenant
func (tm *TenantModule) Activate() {
	if tm.active {
		return
	}
	tm.active = true
	tm.updatedAt = time.Now()
}

// Deactivate disables the module for the tenant without deleting the
// association, preserving history and any module-scoped overrides.
func (tm *TenantModule) Deactivate() {
	if !tm.active {
		return
	}
	tm.active = false
	tm.updatedAt = time.Now()
}
