package dto

import "time"

// RecordOverrideRequest records a per-user, per-module permission
// override. Granted=false narrows a role default, granted=true widens it.
type RecordOverrideRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	ModuleCode string `json:"module_code" validate:"required"`
	Permission string `json:"permission" validate:"required"`
	Granted    bool   `json:"granted"`
}

// OverrideResponse describes one recorded override
type OverrideResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	ModuleCode string    `json:"module_code"`
	Permission string    `json:"permission"`
	Granted    bool      `json:"granted"`
	CreatedAt  time.Time `json:"created_at"`
}
