package dto

import "github.com/atriumhq/atrium/internal/domain/access"

// CheckAccessRequest asks whether a user may perform an action on a module
type CheckAccessRequest struct {
	ModuleCode string `json:"module_code" validate:"required"`
	Action     string `json:"action" validate:"required"`
	TenantID   *uint  `json:"tenant_id,omitempty"`
}

// DecisionResponse carries the evaluated decision. A deny is a normal
// result; the reason code tells the caller why.
type DecisionResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// NewDecisionResponse maps a domain decision to its transport shape
func NewDecisionResponse(d access.Decision) *DecisionResponse {
	return &DecisionResponse{
		Allowed: d.Allowed,
		Reason:  d.Reason.String(),
	}
}

// MenuResponse carries the navigation tree for the authenticated user
type MenuResponse struct {
	Entries []access.MenuEntry `json:"entries"`
}
