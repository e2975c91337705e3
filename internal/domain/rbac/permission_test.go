package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionNameValidity(t *testing.T) {
	tests := []struct {
		name  string
		value PermissionName
		valid bool
	}{
		{"simple", "taxi.view", true},
		{"fine grained", "invoice.create", true},
		{"missing verb", "taxi.", false},
		{"missing resource", ".view", false},
		{"no separator", "taxiview", false},
		{"too many parts", "a.b.c", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.value.IsValid())
		})
	}
}

func TestPermissionNameParts(t *testing.T) {
	name := PermissionName("invoice.create")

	assert.Equal(t, "invoice", name.Resource())
	assert.Equal(t, "create", name.Verb())
}

func TestBuiltinRoleCannotBeTenantScoped(t *testing.T) {
	tenantID := uint(3)

	_, err := NewRole(RoleAdmin, &tenantID, "")
	assert.Error(t, err)

	role, err := NewRole("AUDITOR", &tenantID, "tenant-defined role")
	require.NoError(t, err)
	assert.Equal(t, &tenantID, role.TenantID())
}

func TestOverrideRequiresValidPermission(t *testing.T) {
	_, err := NewOverride(1, 2, "not-a-permission", true)
	assert.Error(t, err)

	o, err := NewOverride(1, 2, "taxi.view", false)
	require.NoError(t, err)
	assert.False(t, o.Granted())
}
