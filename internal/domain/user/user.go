package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/atriumhq/atrium/internal/domain/rbac"
)

const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// User represents the user aggregate root. A user belongs to exactly
// one tenant; platform-level super admins carry a nil tenant ID.
type User struct {
	id           uint
	email        string
	name         string
	passwordHash string
	tenantID     *uint
	roleNames    []string
	status       string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user. The password hash is produced by the
// infrastructure hasher; the aggregate never sees the plaintext.
func NewUser(email, name, passwordHash string, tenantID *uint) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		tenantID:     tenantID,
		roleNames:    []string{rbac.RoleUser},
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Anonymous returns the principal used for unauthenticated requests.
// It holds only the ANONYMOUS role and carries no identity; decisions
// for it flow through the same engine as any other user.
func Anonymous(tenantID uint) *User {
	now := time.Now()
	return &User{
		name:      "anonymous",
		tenantID:  &tenantID,
		roleNames: []string{rbac.RoleAnonymous},
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	email, name, passwordHash string,
	tenantID *uint,
	roleNames []string,
	status string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		tenantID:     tenantID,
		roleNames:    roleNames,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) TenantID() *uint {
	return u.tenantID
}

func (u *User) RoleNames() []string {
	return u.roleNames
}

func (u *User) Status() string {
	return u.status
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsSuperAdmin reports whether the user holds the platform role
func (u *User) IsSuperAdmin() bool {
	return u.HasRole(rbac.RoleSuperAdmin)
}

// IsPlatformScoped reports whether the user operates outside any tenant
func (u *User) IsPlatformScoped() bool {
	return u.tenantID == nil
}

// HasRole reports whether the user holds the named role
func (u *User) HasRole(name string) bool {
	for _, r := range u.roleNames {
		if r == name {
			return true
		}
	}
	return false
}

// AssignRole adds a role to the user; assigning an already held role
// is a no-op.
func (u *User) AssignRole(name string) error {
	if name == "" {
		return fmt.Errorf("role name is required")
	}
	if u.HasRole(name) {
		return nil
	}
	if name == rbac.RoleSuperAdmin && u.tenantID != nil {
		return fmt.Errorf("super admin role requires a platform-scoped user")
	}
	u.roleNames = append(u.roleNames, name)
	u.updatedAt = time.Now()
	return nil
}

// RevokeRole removes a role from the user
func (u *User) RevokeRole(name string) {
	kept := u.roleNames[:0]
	for _, r := range u.roleNames {
		if r != name {
			kept = append(kept, r)
		}
	}
	if len(kept) != len(u.roleNames) {
		u.roleNames = kept
		u.updatedAt = time.Now()
	}
}

// Disable blocks the user from authenticating
func (u *User) Disable() {
	if u.status == StatusDisabled {
		return
	}
	u.status = StatusDisabled
	u.updatedAt = time.Now()
}
