package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)
	tenantID := uint(3)

	token, expiresIn, err := svc.Issue(42, &tenantID, []string{"ADMIN", "USER"})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	require.NotNil(t, claims.TenantID)
	assert.Equal(t, uint(3), *claims.TenantID)
	assert.Equal(t, []string{"ADMIN", "USER"}, claims.Roles)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", 15).Issue(1, nil, nil)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, _, err := NewJWTService("test-secret", -1).Issue(1, nil, nil)
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", -1).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 15).Verify("not.a.token")
	assert.Error(t, err)
}
