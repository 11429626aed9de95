package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/servicehub/internal/api/dto"
	"github.com/spec-kit/servicehub/internal/auth"
	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// DashboardHandler serves the professional dashboard endpoints.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Metrics GET /dashboard/metrics.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	status := parseStatusQuery(c)
	dateRange := parseDateRangeQuery(c)

	metrics, err := h.service.ComputeMetrics(c.Context(), principal.User.ID, status, dateRange)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DashboardMetricsResponse{
		RequestCount:     metrics.RequestCount,
		AvgResponseHours: metrics.AvgResponseHours,
		CompletedCount:   metrics.CompletedCount,
		TotalEarnings:    metrics.TotalEarnings,
	}})
}

// Requests GET /dashboard/requests.
func (h *DashboardHandler) Requests(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	status := parseStatusQuery(c)
	dateRange := parseDateRangeQuery(c)

	requests, err := h.service.ListRequests(c.Context(), principal.User.ID, status, dateRange, c.Query("search"))
	if err != nil {
		return err
	}
	items := make([]dto.RequestSummary, 0, len(requests))
	for i := range requests {
		items = append(items, requestSummary(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseStatusQuery(c *fiber.Ctx) *domain.RequestStatus {
	return statusFilterFromQuery(c.Query("status"))
}

// statusFilterFromQuery maps the status query parameter to an optional filter.
// Empty and "all" mean no filter; values match case-insensitively.
func statusFilterFromQuery(raw string) *domain.RequestStatus {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return nil
	}
	status := domain.RequestStatus(strings.ToUpper(trimmed))
	return &status
}

func parseDateRangeQuery(c *fiber.Ctx) service.DateRange {
	raw := c.Query("date_range")
	if raw == "" {
		return service.DateRange7d
	}
	return service.DateRange(raw)
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
