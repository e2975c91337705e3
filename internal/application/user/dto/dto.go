package dto

import "time"

// RegisterUserRequest creates a user inside a tenant. A nil TenantID
// creates a platform-scoped user (only meaningful for platform staff).
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	TenantID *uint  `json:"tenant_id,omitempty"`
}

// AssignRoleRequest grants a role to a user
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserResponse describes a user without credentials
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	TenantID  *uint     `json:"tenant_id,omitempty"`
	Roles     []string  `json:"roles"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
