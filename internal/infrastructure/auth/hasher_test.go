package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Verify(hash, "correct horse battery staple"))
	assert.False(t, hasher.Verify(hash, "wrong password"))
	assert.False(t, hasher.Verify("malformed-hash", "anything"))
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hash, "pw"))
}
