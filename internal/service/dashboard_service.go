package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// DateRange selects the lower bound on createdAt for dashboard queries.
type DateRange string

const (
	DateRange24h DateRange = "24h"
	DateRange7d  DateRange = "7d"
	DateRange30d DateRange = "30d"
	DateRangeAll DateRange = "all"
)

// DashboardPageSize caps dashboard request listings.
const DashboardPageSize = 50

// ResolveSince converts the range into a createdAt lower bound, or nil for "all".
// Unrecognized values fall back to 7d, matching the listing default.
func (r DateRange) ResolveSince(now time.Time) *time.Time {
	var since time.Time
	switch r {
	case DateRange24h:
		since = now.Add(-24 * time.Hour)
	case DateRangeAll:
		return nil
	case DateRange30d:
		since = now.AddDate(0, 0, -30)
	default:
		since = now.AddDate(0, 0, -7)
	}
	return &since
}

// DashboardMetrics is the windowed aggregate shown to a professional.
type DashboardMetrics struct {
	RequestCount     int64   `json:"request_count"`
	AvgResponseHours float64 `json:"avg_response_hours"`
	CompletedCount   int64   `json:"completed_count"`
	TotalEarnings    float64 `json:"total_earnings"`
}

// MetricsCache is the read-through cache used for dashboard aggregates. A
// failed Get is treated as a miss; a failed Set is ignored.
type MetricsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// DashboardService computes windowed dashboards over the request store.
// Aggregates are cached briefly and concurrent recomputations for the same
// key collapse into one store query.
type DashboardService struct {
	requests repository.RequestRepository
	cache    MetricsCache
	cacheTTL time.Duration
	group    singleflight.Group
	logger   *zap.Logger
}

// NewDashboardService constructs the service. cache may be nil, in which case
// every call hits the store.
func NewDashboardService(requests repository.RequestRepository, cache MetricsCache, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		requests: requests,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ComputeMetrics aggregates the professional's requests filtered by status and
// date range. A professional with no matching requests gets zeroed metrics,
// not an error.
func (s *DashboardService) ComputeMetrics(ctx context.Context, professionalID string, status *domain.RequestStatus, dateRange DateRange) (*DashboardMetrics, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidationError("unrecognized status", map[string]any{"status": *status})
	}

	key := metricsCacheKey(professionalID, status, dateRange)
	if cached := s.cachedMetrics(ctx, key); cached != nil {
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		filter := repository.RequestFilter{
			ProfessionalID: &professionalID,
			CreatedFrom:    dateRange.ResolveSince(time.Now()),
		}
		if status != nil {
			filter.Statuses = []domain.RequestStatus{*status}
		}
		raw, err := s.requests.AggregateMetrics(ctx, filter)
		if err != nil {
			return nil, err
		}
		metrics := &DashboardMetrics{
			RequestCount:     raw.RequestCount,
			AvgResponseHours: roundToDecimal(raw.AvgResponseHours),
			CompletedCount:   raw.CompletedCount,
			TotalEarnings:    raw.TotalEarnings,
		}
		s.storeMetrics(ctx, key, metrics)
		return metrics, nil
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result.(*DashboardMetrics), nil
}

// ListRequests returns the professional's requests filtered by status, date
// range and an optional case-insensitive search against category or location,
// newest first, capped at DashboardPageSize.
func (s *DashboardService) ListRequests(ctx context.Context, professionalID string, status *domain.RequestStatus, dateRange DateRange, searchText string) ([]domain.ServiceRequest, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidationError("unrecognized status", map[string]any{"status": *status})
	}

	filter := repository.RequestFilter{
		ProfessionalID: &professionalID,
		CreatedFrom:    dateRange.ResolveSince(time.Now()),
		Limit:          DashboardPageSize,
	}
	if status != nil {
		filter.Statuses = []domain.RequestStatus{*status}
	}
	if searchText != "" {
		filter.SearchTerm = &searchText
	}

	requests, err := s.requests.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

func (s *DashboardService) cachedMetrics(ctx context.Context, key string) *DashboardMetrics {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return nil
	}
	var metrics DashboardMetrics
	if err := json.Unmarshal([]byte(raw), &metrics); err != nil {
		s.logger.Warn("discarding malformed cached metrics", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &metrics
}

func (s *DashboardService) storeMetrics(ctx context.Context, key string, metrics *DashboardMetrics) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(metrics)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache metrics", zap.String("key", key), zap.Error(err))
	}
}

func metricsCacheKey(professionalID string, status *domain.RequestStatus, dateRange DateRange) string {
	statusPart := "all"
	if status != nil {
		statusPart = string(*status)
	}
	return fmt.Sprintf("dashboard:metrics:%s:%s:%s", professionalID, statusPart, dateRange)
}

// roundToDecimal rounds to one decimal place for display.
func roundToDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
