package dto

// DashboardMetricsResponse is the aggregate block of the professional dashboard.
type DashboardMetricsResponse struct {
	RequestCount     int64   `json:"request_count"`
	AvgResponseHours float64 `json:"avg_response_hours"`
	CompletedCount   int64   `json:"completed_count"`
	TotalEarnings    float64 `json:"total_earnings"`
}
