package tenant

import (
	"fmt"
	"time"

	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
)

// Tenant represents the tenant aggregate root. A tenant is a customer
// organization, the unit of data isolation and subscription billing.
type Tenant struct {
	id            uint
	name          string
	slug          string
	status        vo.SubscriptionStatus
	planExpiresAt *time.Time
	metadata      map[string]any
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTenant creates a new tenant with an active subscription
func NewTenant(name, slug string, planExpiresAt *time.Time) (*Tenant, error) {
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("tenant slug is required")
	}

	now := time.Now()
	return &Tenant{
		name:          name,
		slug:          slug,
		status:        vo.StatusActive,
		planExpiresAt: planExpiresAt,
		metadata:      make(map[string]any),
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructTenant reconstructs a tenant from persistence
func ReconstructTenant(
	id uint,
	name, slug string,
	status vo.SubscriptionStatus,
	planExpiresAt *time.Time,
	metadata map[string]any,
	version int,
	createdAt, updatedAt time.Time,
) (*Tenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Tenant{
		id:            id,
		name:          name,
		slug:          slug,
		status:        status,
		planExpiresAt: planExpiresAt,
		metadata:      metadata,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Tenant) ID() uint {
	return t.id
}

func (t *Tenant) Name() string {
	return t.name
}

func (t *Tenant) Slug() string {
	return t.slug
}

func (t *Tenant) Status() vo.SubscriptionStatus {
	return t.status
}

func (t *Tenant) PlanExpiresAt() *time.Time {
	return t.planExpiresAt
}

func (t *Tenant) Metadata() map[string]any {
	return t.metadata
}

func (t *Tenant) Version() int {
	return t.version
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the tenant ID (only for persistence layer use)
func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = id
	return nil
}

// Rename updates the tenant display name
func (t *Tenant) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("tenant name is required")
	}
	t.name = name
	t.touch()
	return nil
}

// Suspend suspends the tenant subscription
func (t *Tenant) Suspend() error {
	return t.transitionTo(vo.StatusSuspended)
}

// Reactivate reactivates a suspended or expired tenant
func (t *Tenant) Reactivate(planExpiresAt *time.Time) error {
	if err := t.transitionTo(vo.StatusActive); err != nil {
		return err
	}
	t.planExpiresAt = planExpiresAt
	return nil
}

// MarkExpired marks the tenant subscription as expired
func (t *Tenant) MarkExpired() error {
	return t.transitionTo(vo.StatusExpired)
}

func (t *Tenant) transitionTo(target vo.SubscriptionStatus) error {
	if t.status == target {
		return nil
	}
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition tenant from %s to %s", t.status, target)
	}
	t.status = target
	t.touch()
	return nil
}

func (t *Tenant) touch() {
	t.updatedAt = time.Now()
	t.version++
}
