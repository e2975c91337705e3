package rbac

import (
	"fmt"
	"strings"
	"time"
)

// PermissionName is an atomic capability name, conventionally
// "<resource>.<verb>" (e.g. "invoice.create").
type PermissionName string

func (n PermissionName) String() string {
	return string(n)
}

func (n PermissionName) IsValid() bool {
	parts := strings.Split(string(n), ".")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// Resource returns the "<resource>" part of the name
func (n PermissionName) Resource() string {
	if idx := strings.IndexByte(string(n), '.'); idx > 0 {
		return string(n)[:idx]
	}
	return string(n)
}

// Verb returns the "<verb>" part of the name
func (n PermissionName) Verb() string {
	if idx := strings.IndexByte(string(n), '.'); idx >= 0 && idx < len(n)-1 {
		return string(n)[idx+1:]
	}
	return ""
}

// Permission represents one entry of the global permission catalog.
// Permissions are declared against a module; a role grant or override
// naming a permission outside the module's catalog is ignored.
type Permission struct {
	id          uint
	name        PermissionName
	moduleID    uint
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPermission creates a new catalog permission
func NewPermission(name PermissionName, moduleID uint, description string) (*Permission, error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("invalid permission name: %q (expected resource.verb)", name)
	}
	if moduleID == 0 {
		return nil, fmt.Errorf("module ID is required")
	}

	now := time.Now()
	return &Permission{
		name:        name,
		moduleID:    moduleID,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPermission reconstructs a permission from persistence
func ReconstructPermission(id uint, name PermissionName, moduleID uint, description string, createdAt, updatedAt time.Time) (*Permission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}
	if !name.IsValid() {
		return nil, fmt.Errorf("invalid permission name: %q", name)
	}

	return &Permission{
		id:          id,
		name:        name,
		moduleID:    moduleID,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Permission) ID() uint {
	return p.id
}

func (p *Permission) Name() PermissionName {
	return p.name
}

func (p *Permission) ModuleID() uint {
	return p.moduleID
}

func (p *Permission) Description() string {
	return p.description
}

func (p *Permission) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permission) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the permission ID (only for persistence layer use)
func (p *Permission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}
