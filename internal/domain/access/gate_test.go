package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "github.com/atriumhq/atrium/internal/domain/tenant/valueobjects"
)

func TestTenantActive(t *testing.T) {
	future := testNow.Add(24 * time.Hour)
	past := testNow.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		status vo.SubscriptionStatus
		expiry *time.Time
		want   bool
	}{
		{"active without expiry", vo.StatusActive, nil, true},
		{"active with future expiry", vo.StatusActive, &future, true},
		{"active with past expiry", vo.StatusActive, &past, false},
		{"active with expiry exactly now", vo.StatusActive, &testNow, false},
		{"suspended", vo.StatusSuspended, nil, false},
		{"suspended with future expiry", vo.StatusSuspended, &future, false},
		{"expired", vo.StatusExpired, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := tenantWithStatus(t, tt.status, tt.expiry)
			assert.Equal(t, tt.want, TenantActive(tn, testNow))
		})
	}
}

func TestTenantActive_NilTenant(t *testing.T) {
	assert.False(t, TenantActive(nil, testNow))
}

func TestTenantActive_TimeDependent(t *testing.T) {
	expiry := testNow.Add(time.Hour)
	tn := tenantWithStatus(t, vo.StatusActive, &expiry)

	assert.True(t, TenantActive(tn, testNow))
	assert.False(t, TenantActive(tn, testNow.Add(2*time.Hour)),
		"the same tenant must gate differently once the expiry passes")
}
