package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/requests", "POST", 201, 10*time.Millisecond)
	m.RecordRequest("/requests", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/requests", "POST", 400, time.Millisecond)
	m.RecordError("/requests", "POST", "VALIDATION_FAILED")
	m.RecordError("/professionals/:id/rate", "POST", "DUPLICATE_RATING")

	assert.Equal(t, int64(2), m.RequestCount("/requests", "POST", 201))
	assert.Equal(t, int64(1), m.RequestCount("/requests", "POST", 400))
	assert.Equal(t, int64(0), m.RequestCount("/requests", "GET", 200))
	assert.Equal(t, 16*time.Millisecond, m.TotalDuration("/requests", "POST"))
	assert.Equal(t, int64(1), m.ErrorCount("/requests", "POST", "VALIDATION_FAILED"))
	assert.Equal(t, int64(1), m.ErrorCount("/professionals/:id/rate", "POST", "DUPLICATE_RATING"))
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics

	m.RecordRequest("/requests", "GET", 200, time.Millisecond)
	m.RecordError("/requests", "GET", "INTERNAL_ERROR")

	assert.Equal(t, int64(0), m.RequestCount("/requests", "GET", 200))
	assert.Equal(t, int64(0), m.ErrorCount("/requests", "GET", "INTERNAL_ERROR"))
	assert.Equal(t, time.Duration(0), m.TotalDuration("/requests", "GET"))
}
