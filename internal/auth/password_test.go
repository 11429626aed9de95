package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hashed)

	assert.NoError(t, ComparePassword(hashed, "hunter2"))
	assert.Error(t, ComparePassword(hashed, "hunter3"))
}

func TestHashPasswordClampsCost(t *testing.T) {
	for _, cost := range []int{-1, 0, 100} {
		hashed, err := HashPassword("hunter2", cost)
		require.NoError(t, err)

		actual, err := bcrypt.Cost([]byte(hashed))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, actual)
	}
}

func TestHashPasswordProducesSaltedHashes(t *testing.T) {
	first, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$2a$"))
}
