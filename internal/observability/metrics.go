package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process request and error counters. Enough for log
// correlation and tests; a metrics backend is out of scope here.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
	latency  map[string]time.Duration
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
		latency:  make(map[string]time.Duration),
	}
}

// RecordRequest counts a completed request and accumulates its duration.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.latency[key] += duration
}

// RecordError counts an error by its domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[key]++
}

// RequestCount returns the number of requests recorded for the key.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey(path, method, status)]
}

func requestKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
