package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func TestResolveSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("24h window", func(t *testing.T) {
		since := DateRange24h.ResolveSince(now)
		require.NotNil(t, since)
		assert.Equal(t, now.Add(-24*time.Hour), *since)
	})

	t.Run("30d window", func(t *testing.T) {
		since := DateRange30d.ResolveSince(now)
		require.NotNil(t, since)
		assert.Equal(t, now.AddDate(0, 0, -30), *since)
	})

	t.Run("all has no lower bound", func(t *testing.T) {
		assert.Nil(t, DateRangeAll.ResolveSince(now))
	})

	t.Run("unknown value falls back to 7d", func(t *testing.T) {
		since := DateRange("fortnight").ResolveSince(now)
		require.NotNil(t, since)
		assert.Equal(t, now.AddDate(0, 0, -7), *since)
	})
}

func TestComputeMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("no matching requests yields zeroes", func(t *testing.T) {
		repo := &mocks.MockRequestRepository{
			AggregateMetricsFunc: func(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error) {
				return &repository.RequestMetrics{}, nil
			},
		}
		svc := NewDashboardService(repo, nil, time.Minute, zap.NewNop())

		metrics, err := svc.ComputeMetrics(ctx, "pro-1", nil, DateRange7d)

		require.NoError(t, err)
		assert.Equal(t, int64(0), metrics.RequestCount)
		assert.Equal(t, 0.0, metrics.AvgResponseHours)
		assert.Equal(t, int64(0), metrics.CompletedCount)
		assert.Equal(t, 0.0, metrics.TotalEarnings)
	})

	t.Run("average response rounds to one decimal", func(t *testing.T) {
		repo := &mocks.MockRequestRepository{
			AggregateMetricsFunc: func(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error) {
				return &repository.RequestMetrics{
					RequestCount:     3,
					AvgResponseHours: 26.6489,
					CompletedCount:   2,
					TotalEarnings:    380,
				}, nil
			},
		}
		svc := NewDashboardService(repo, nil, time.Minute, zap.NewNop())

		metrics, err := svc.ComputeMetrics(ctx, "pro-1", nil, DateRangeAll)

		require.NoError(t, err)
		assert.Equal(t, 26.6, metrics.AvgResponseHours)
		assert.Equal(t, int64(3), metrics.RequestCount)
		assert.Equal(t, 380.0, metrics.TotalEarnings)
	})

	t.Run("status filter is passed through", func(t *testing.T) {
		status := domain.RequestStatusCompleted
		repo := &mocks.MockRequestRepository{
			AggregateMetricsFunc: func(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error) {
				require.Len(t, filter.Statuses, 1)
				assert.Equal(t, status, filter.Statuses[0])
				require.NotNil(t, filter.ProfessionalID)
				assert.Equal(t, "pro-1", *filter.ProfessionalID)
				return &repository.RequestMetrics{}, nil
			},
		}
		svc := NewDashboardService(repo, nil, time.Minute, zap.NewNop())

		_, err := svc.ComputeMetrics(ctx, "pro-1", &status, DateRange7d)

		require.NoError(t, err)
	})

	t.Run("unrecognized status rejected", func(t *testing.T) {
		status := domain.RequestStatus("IN_LIMBO")
		svc := NewDashboardService(&mocks.MockRequestRepository{}, nil, time.Minute, zap.NewNop())

		_, err := svc.ComputeMetrics(ctx, "pro-1", &status, DateRange7d)

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		cached, err := json.Marshal(DashboardMetrics{RequestCount: 7, AvgResponseHours: 1.5})
		require.NoError(t, err)

		queried := false
		repo := &mocks.MockRequestRepository{
			AggregateMetricsFunc: func(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error) {
				queried = true
				return &repository.RequestMetrics{}, nil
			},
		}
		cache := &mocks.MockMetricsCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				return string(cached), nil
			},
		}
		svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

		metrics, err := svc.ComputeMetrics(ctx, "pro-1", nil, DateRange7d)

		require.NoError(t, err)
		assert.False(t, queried)
		assert.Equal(t, int64(7), metrics.RequestCount)
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		var mu sync.Mutex
		stored := map[string]string{}
		repo := &mocks.MockRequestRepository{
			AggregateMetricsFunc: func(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error) {
				return &repository.RequestMetrics{RequestCount: 2}, nil
			},
		}
		cache := &mocks.MockMetricsCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				return stored[key], nil
			},
			SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error {
				mu.Lock()
				defer mu.Unlock()
				assert.Equal(t, time.Minute, ttl)
				stored[key] = value
				return nil
			},
		}
		svc := NewDashboardService(repo, cache, time.Minute, zap.NewNop())

		_, err := svc.ComputeMetrics(ctx, "pro-1", nil, DateRange7d)

		require.NoError(t, err)
		mu.Lock()
		assert.Len(t, stored, 1)
		mu.Unlock()
	})
}

func TestDashboardListRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("page size is capped", func(t *testing.T) {
		repo := &mocks.MockRequestRepository{
			ListWithFilterFunc: func(ctx context.Context, filter repository.RequestFilter) ([]domain.ServiceRequest, error) {
				assert.Equal(t, DashboardPageSize, filter.Limit)
				return nil, nil
			},
		}
		svc := NewDashboardService(repo, nil, time.Minute, zap.NewNop())

		_, err := svc.ListRequests(ctx, "pro-1", nil, DateRange7d, "")

		require.NoError(t, err)
	})

	t.Run("search text reaches the filter", func(t *testing.T) {
		repo := &mocks.MockRequestRepository{
			ListWithFilterFunc: func(ctx context.Context, filter repository.RequestFilter) ([]domain.ServiceRequest, error) {
				require.NotNil(t, filter.SearchTerm)
				assert.Equal(t, "accra", *filter.SearchTerm)
				return nil, nil
			},
		}
		svc := NewDashboardService(repo, nil, time.Minute, zap.NewNop())

		_, err := svc.ListRequests(ctx, "pro-1", nil, DateRange7d, "accra")

		require.NoError(t, err)
	})

	t.Run("unrecognized status rejected", func(t *testing.T) {
		status := domain.RequestStatus("bogus")
		svc := NewDashboardService(&mocks.MockRequestRepository{}, nil, time.Minute, zap.NewNop())

		_, err := svc.ListRequests(ctx, "pro-1", &status, DateRange7d, "")

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})
}
