package logger

import (
	"sync"
	"time"
)

// Timing summarises the durations recorded under one name
type Timing struct {
	Count int           `json:"count"`
	Total time.Duration `json:"total"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
}

// Average returns the mean duration
func (t Timing) Average() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Count)
}

// Snapshot is a point-in-time copy of Metrics
type Snapshot struct {
	Counters map[string]int64   `json:"counters"`
	Gauges   map[string]float64 `json:"gauges"`
	Timings  map[string]Timing  `json:"timings"`
}

// Metrics tracks counters, gauges and timings. Safe for concurrent use.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	gauges   map[string]float64
	timings  map[string]Timing
}

// NewMetrics creates an empty tracker
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		gauges:   make(map[string]float64),
		timings:  make(map[string]Timing),
	}
}

// AddCounter adds n to a counter
func (m *Metrics) AddCounter(name string, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += n
}

// IncrCounter increments a counter by 1
func (m *Metrics) IncrCounter(name string) {
	m.AddCounter(name, 1)
}

// SetGauge overwrites a gauge
func (m *Metrics) SetGauge(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

// RecordTiming folds a duration into the named timing
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.timings[name]
	if t.Count == 0 || d < t.Min {
		t.Min = d
	}
	if d > t.Max {
		t.Max = d
	}
	t.Count++
	t.Total += d
	m.timings[name] = t
}

// Snapshot returns a deep copy of the current values
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Counters: make(map[string]int64, len(m.counters)),
		Gauges:   make(map[string]float64, len(m.gauges)),
		Timings:  make(map[string]Timing, len(m.timings)),
	}
	for k, v := range m.counters {
		s.Counters[k] = v
	}
	for k, v := range m.gauges {
		s.Gauges[k] = v
	}
	for k, v := range m.timings {
		s.Timings[k] = v
	}
	return s
}

// Fields flattens the snapshot for logging
func (s Snapshot) Fields() Fields {
	f := make(Fields, len(s.Counters)+len(s.Gauges)+len(s.Timings))
	for k, v := range s.Counters {
		f[k] = v
	}
	for k, v := range s.Gauges {
		f[k] = v
	}
	for k, v := range s.Timings {
		f[k] = v.Average().String()
	}
	return f
}
