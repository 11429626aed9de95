package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/servicehub/internal/domain"
)

func TestStatusFilterFromQuery(t *testing.T) {
	t.Run("empty and all mean no filter", func(t *testing.T) {
		assert.Nil(t, statusFilterFromQuery(""))
		assert.Nil(t, statusFilterFromQuery("all"))
		assert.Nil(t, statusFilterFromQuery("ALL"))
		assert.Nil(t, statusFilterFromQuery("  all  "))
	})

	t.Run("values match case-insensitively", func(t *testing.T) {
		for raw, want := range map[string]domain.RequestStatus{
			"completed": domain.RequestStatusCompleted,
			"PENDING":   domain.RequestStatusPending,
			"Active":    domain.RequestStatusActive,
		} {
			status := statusFilterFromQuery(raw)
			require.NotNil(t, status, raw)
			assert.Equal(t, want, *status)
		}
	})

	t.Run("unknown values pass through for validation", func(t *testing.T) {
		status := statusFilterFromQuery("limbo")
		require.NotNil(t, status)
		assert.False(t, status.Valid())
	})
}
