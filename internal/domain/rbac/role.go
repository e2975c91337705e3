package rbac

import (
	"fmt"
	"time"
)

// Built-in role names. Tenants may define additional roles; these four
// carry special semantics in the access engine and the HTTP layer.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
	// RoleAnonymous is a real role with a fixed, minimal grant set used
	// for bootstrap and demo flows. Unauthenticated requests evaluate
	// through the engine under this role instead of bypassing it.
	RoleAnonymous = "ANONYMOUS"
)

// IsBuiltinRole reports whether the name is one of the platform roles
func IsBuiltinRole(name string) bool {
	switch name {
	case RoleSuperAdmin, RoleAdmin, RoleUser, RoleAnonymous:
		return true
	}
	return false
}

// Role is a named bundle of permission grants assignable to users.
type Role struct {
	id          uint
	name        string
	tenantID    *uint
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRole creates a new role. tenantID is nil for platform-wide roles.
func NewRole(name string, tenantID *uint, description string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if IsBuiltinRole(name) && tenantID != nil {
		return nil, fmt.Errorf("built-in role %s cannot be tenant-scoped", name)
	}

	now := time.Now()
	return &Role{
		name:        name,
		tenantID:    tenantID,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructRole reconstructs a role from persistence
func ReconstructRole(id uint, name string, tenantID *uint, description string, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}

	return &Role{
		id:          id,
		name:        name,
		tenantID:    tenantID,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) TenantID() *uint {
	return r.tenantID
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the role ID (only for persistence layer use)
func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}
