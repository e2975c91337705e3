package dto

import "time"

// EnableModuleRequest opts a tenant into a catalog module
type EnableModuleRequest struct {
	TenantID   uint   `json:"tenant_id" validate:"required"`
	ModuleCode string `json:"module_code" validate:"required"`
}

// DisableModuleRequest switches a module off for a tenant
type DisableModuleRequest struct {
	TenantID   uint   `json:"tenant_id" validate:"required"`
	ModuleCode string `json:"module_code" validate:"required"`
}

// TenantModuleResponse describes one tenant-module association
type TenantModuleResponse struct {
	ModuleCode string    `json:"module_code"`
	ModuleName string    `json:"module_name"`
	Active     bool      `json:"active"`
	UpdatedAt  time.Time `json:"updated_at"`
}
