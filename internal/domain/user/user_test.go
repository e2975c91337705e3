package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium/internal/domain/rbac"
)

func newTenantUser(t *testing.T) *User {
	t.Helper()
	tenantID := uint(7)
	u, err := NewUser("member@acme.test", "Member", "hash", &tenantID)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTenantUser(t)

	assert.Equal(t, "member@acme.test", u.Email())
	assert.Equal(t, StatusActive, u.Status())
	assert.Equal(t, []string{rbac.RoleUser}, u.RoleNames())
	assert.False(t, u.IsSuperAdmin())
	assert.False(t, u.IsPlatformScoped())
}

func TestNewUserNormalizesEmail(t *testing.T) {
	u, err := NewUser("  Member@Acme.Test ", "Member", "hash", nil)
	require.NoError(t, err)

	assert.Equal(t, "member@acme.test", u.Email())
}

func TestNewUserRejectsInvalidEmail(t *testing.T) {
	_, err := NewUser("not-an-email", "Member", "hash", nil)
	assert.Error(t, err)
}

func TestAssignRoleIsIdempotent(t *testing.T) {
	u := newTenantUser(t)

	require.NoError(t, u.AssignRole(rbac.RoleAdmin))
	require.NoError(t, u.AssignRole(rbac.RoleAdmin))

	assert.Equal(t, []string{rbac.RoleUser, rbac.RoleAdmin}, u.RoleNames())
}

func TestAssignSuperAdminRequiresPlatformScope(t *testing.T) {
	tenantUser := newTenantUser(t)
	err := tenantUser.AssignRole(rbac.RoleSuperAdmin)
	assert.Error(t, err)
	assert.False(t, tenantUser.IsSuperAdmin())

	platformUser, err := NewUser("ops@atrium.test", "Ops", "hash", nil)
	require.NoError(t, err)
	require.NoError(t, platformUser.AssignRole(rbac.RoleSuperAdmin))
	assert.True(t, platformUser.IsSuperAdmin())
	assert.True(t, platformUser.IsPlatformScoped())
}

func TestRevokeRole(t *testing.T) {
	u := newTenantUser(t)
	require.NoError(t, u.AssignRole(rbac.RoleAdmin))

	u.RevokeRole(rbac.RoleUser)

	assert.False(t, u.HasRole(rbac.RoleUser))
	assert.True(t, u.HasRole(rbac.RoleAdmin))
}

func TestAnonymousPrincipal(t *testing.T) {
	u := Anonymous(42)

	assert.Zero(t, u.ID())
	assert.Equal(t, []string{rbac.RoleAnonymous}, u.RoleNames())
	assert.False(t, u.IsSuperAdmin())
	require.NotNil(t, u.TenantID())
	assert.Equal(t, uint(42), *u.TenantID())
}

func TestDisable(t *testing.T) {
	u := newTenantUser(t)

	u.Disable()

	assert.Equal(t, StatusDisabled, u.Status())
}
