package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	latencyTotal map[string]time.Duration
}

// MetricsSnapshot is a point-in-time copy of the counters. Keys are "path|method|status" for
// requests and "path|method|code" for errors.
type MetricsSnapshot struct {
	Requests         map[string]int64   `json:"requests"`
	Errors           map[string]int64   `json:"errors"`
	AverageLatencyMS map[string]float64 `json:"averageLatencyMs"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latencyTotal: make(map[string]time.Duration),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.latencyTotal[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Requests:         map[string]int64{},
		Errors:           map[string]int64{},
		AverageLatencyMS: map[string]float64{},
	}
	if m == nil {
		return snapshot
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, count := range m.requestCount {
		snapshot.Requests[key] = count
		if count > 0 {
			snapshot.AverageLatencyMS[key] = float64(m.latencyTotal[key].Microseconds()) / 1000 / float64(count)
		}
	}
	for key, count := range m.errorCount {
		snapshot.Errors[key] = count
	}
	return snapshot
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
