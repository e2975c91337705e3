package access

// Reason is the machine-readable cause of a deny decision. The reasons
// are checked in a fixed order and the first match wins, so a disabled
// module denies before permissions are even evaluated and never leaks
// whether the caller would have been permitted.
type Reason string

const (
	ReasonTenantInactive   Reason = "TENANT_INACTIVE"
	ReasonModuleDisabled   Reason = "MODULE_DISABLED"
	ReasonPermissionDenied Reason = "PERMISSION_DENIED"
)

func (r Reason) String() string {
	return string(r)
}

// Decision is the outcome of evaluating one (user, module, action)
// triple. A deny is a successfully computed result, not an error:
// faults mean the engine could not evaluate at all.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow returns an allowing decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason
func Deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}
