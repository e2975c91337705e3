package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenantModuleStartsActive(t *testing.T) {
	tm, err := NewTenantModule(1, 2)
	require.NoError(t, err)

	assert.True(t, tm.IsActive())
	assert.Equal(t, uint(1), tm.TenantID())
	assert.Equal(t, uint(2), tm.ModuleID())
}

func TestDeactivateKeepsAssociation(t *testing.T) {
	tm, err := NewTenantModule(1, 2)
	require.NoError(t, err)

	tm.Deactivate()
	assert.False(t, tm.IsActive())

	// re-enabling restores the same association
	tm.Activate()
	assert.True(t, tm.IsActive())
}

func TestCodeValidity(t *testing.T) {
	for _, code := range []Code{CodeCommerce, CodeRealEstate, CodeTaxi, CodeFinance, CodeStatistics, CodeAdmin} {
		assert.True(t, code.IsValid(), code)
	}

	assert.False(t, Code("BILLING").IsValid())
	assert.False(t, Code("taxi").IsValid(), "codes are case-sensitive")
	assert.False(t, Code("").IsValid())
}

func TestModuleGlobalSwitch(t *testing.T) {
	m, err := NewModule(CodeTaxi, "Taxi", "car", "/taxi", 30)
	require.NoError(t, err)
	require.True(t, m.ActiveGlobally())

	m.DisableGlobally()
	assert.False(t, m.ActiveGlobally())

	m.EnableGlobally()
	assert.True(t, m.ActiveGlobally())
}
