package dto

import "time"

// CreateTenantRequest provisions a new tenant with an active subscription
type CreateTenantRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=120"`
	Slug          string     `json:"slug" validate:"required,min=2,max=60"`
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`
}

// ReactivateTenantRequest reactivates a suspended or expired tenant
type ReactivateTenantRequest struct {
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`
}

// TenantResponse describes a tenant
type TenantResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Status        string     `json:"status"`
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
