package access

import (
	"time"

	"github.com/atriumhq/atrium/internal/domain/tenant"
	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
)

// TenantActive reports whether the tenant's subscription admits any
// module access at the given instant. The subscription must be active
// and the plan expiry, when set, must lie strictly in the future. A
// past expiry with a still-active status counts as inactive: the
// status may simply not have been reconciled yet.
//
// The check is pure and takes the evaluation time explicitly; it must
// be re-evaluated on every decision and never memoized across
// requests, since the answer changes as time passes.
func TenantActive(t *tenant.Tenant, now time.Time) bool {
	if t == nil {
		return false
	}
	if t.Status() != vo.StatusActive {
		return false
	}
	if exp := t.PlanExpiresAt(); exp != nil && !exp.After(now) {
		return false
	}
	return true
}
