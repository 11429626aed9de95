package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-memory traffic counters for the marketplace API. Requests
// are keyed by route, method and status; errors additionally by taxonomy code
// so FORBIDDEN spikes on lifecycle routes stand apart from validation noise.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	totalDuration map[string]time.Duration
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		totalDuration: make(map[string]time.Duration),
	}
}

// RecordRequest increments counters for a handled request and accumulates its
// duration per route.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[requestKey(path, method, status)]++
	m.totalDuration[routeKey(path, method)] += duration
}

// RecordError increments the counter for an error taxonomy code on a route.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[routeKey(path, method)+"|"+code]++
}

// RequestCount returns how many requests were recorded for the route/status.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[requestKey(path, method, status)]
}

// ErrorCount returns how many errors with the given code were recorded.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorCount[routeKey(path, method)+"|"+code]
}

// TotalDuration returns the accumulated handling time for the route.
func (m *Metrics) TotalDuration(path, method string) time.Duration {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalDuration[routeKey(path, method)]
}

func routeKey(path, method string) string {
	return path + "|" + method
}

func requestKey(path, method string, status int) string {
	return routeKey(path, method) + "|" + strconv.Itoa(status)
}
