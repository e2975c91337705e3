package tenant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
)

func newTestTenant(t *testing.T) *Tenant {
	t.Helper()
	tn, err := NewTenant("Acme Corp", "acme", nil)
	require.NoError(t, err)
	return tn
}

func TestNewTenant_ValidInput(t *testing.T) {
	expiry := time.Now().AddDate(1, 0, 0)
	tn, err := NewTenant("Acme Corp", "acme", &expiry)

	require.NoError(t, err)
	require.NotNil(t, tn)
	assert.Equal(t, "Acme Corp", tn.Name())
	assert.Equal(t, "acme", tn.Slug())
	assert.Equal(t, vo.StatusActive, tn.Status())
	assert.Equal(t, &expiry, tn.PlanExpiresAt())
	assert.Equal(t, 1, tn.Version())
}

func TestNewTenant_MissingFields(t *testing.T) {
	_, err := NewTenant("", "acme", nil)
	assert.Error(t, err)

	_, err = NewTenant("Acme Corp", "", nil)
	assert.Error(t, err)
}

func TestReconstructTenant_InvalidStatus(t *testing.T) {
	now := time.Now()
	_, err := ReconstructTenant(1, "Acme Corp", "acme", "frozen", nil, nil, 1, now, now)
	assert.Error(t, err)
}

func TestTenant_Suspend(t *testing.T) {
	tn := newTestTenant(t)

	require.NoError(t, tn.Suspend())
	assert.Equal(t, vo.StatusSuspended, tn.Status())
	assert.Equal(t, 2, tn.Version())

	// idempotent
	require.NoError(t, tn.Suspend())
	assert.Equal(t, 2, tn.Version())
}

func TestTenant_Reactivate(t *testing.T) {
	tn := newTestTenant(t)
	require.NoError(t, tn.Suspend())

	expiry := time.Now().AddDate(0, 1, 0)
	require.NoError(t, tn.Reactivate(&expiry))
	assert.Equal(t, vo.StatusActive, tn.Status())
	assert.Equal(t, &expiry, tn.PlanExpiresAt())
}

func TestTenant_ExpiredCannotSuspend(t *testing.T) {
	tn := newTestTenant(t)
	require.NoError(t, tn.MarkExpired())

	err := tn.Suspend()
	assert.Error(t, err)
	assert.Equal(t, vo.StatusExpired, tn.Status())
}

func TestTenant_ExpiredCanRenew(t *testing.T) {
	tn := newTestTenant(t)
	require.NoError(t, tn.MarkExpired())

	expiry := time.Now().AddDate(0, 1, 0)
	require.NoError(t, tn.Reactivate(&expiry))
	assert.Equal(t, vo.StatusActive, tn.Status())
}

func TestSubscriptionStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    vo.SubscriptionStatus
		to      vo.SubscriptionStatus
		allowed bool
	}{
		{vo.StatusActive, vo.StatusSuspended, true},
		{vo.StatusActive, vo.StatusExpired, true},
		{vo.StatusSuspended, vo.StatusActive, true},
		{vo.StatusSuspended, vo.StatusExpired, true},
		{vo.StatusExpired, vo.StatusActive, true},
		{vo.StatusExpired, vo.StatusSuspended, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
