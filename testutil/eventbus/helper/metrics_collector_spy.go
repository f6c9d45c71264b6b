package helper

import (
	"sync"
	"time"

	"github.com/eventflux/domain-eventbus-go/eventbus"
)

// MetricsCollectorSpy is a MetricsCollector implementation that captures
// metrics calls for testing event bus observability instrumentation.
type MetricsCollectorSpy struct {
	durationRecords []SpyDurationRecord
	counterRecords  []SpyCounterRecord
	valueRecords    []SpyValueRecord
	mu              sync.Mutex
}

// SpyDurationRecord represents a recorded duration metric call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded counter increment call.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents a recorded value metric call.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{
		durationRecords: make([]SpyDurationRecord, 0),
		counterRecords:  make([]SpyCounterRecord, 0),
		valueRecords:    make([]SpyValueRecord, 0),
	}
}

// RecordDuration implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, SpyDurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   copyLabels(labels),
	})
}

// IncrementCounter implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, SpyCounterRecord{
		Metric: metric,
		Labels: copyLabels(labels),
	})
}

// RecordValue implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, SpyValueRecord{
		Metric: metric,
		Value:  value,
		Labels: copyLabels(labels),
	})
}

// GetDurationRecords returns a copy of all captured duration records.
func (s *MetricsCollectorSpy) GetDurationRecords() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyDurationRecord(nil), s.durationRecords...)
}

// GetCounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyCounterRecord(nil), s.counterRecords...)
}

// GetValueRecords returns a copy of all captured value records.
func (s *MetricsCollectorSpy) GetValueRecords() []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyValueRecord(nil), s.valueRecords...)
}

// CountCounterRecordsForMetric counts how many counter records exist for a specific metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

// CountDurationRecordsForMetric counts how many duration records exist for a specific metric.
func (s *MetricsCollectorSpy) CountDurationRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.durationRecords {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

// HasCounterRecord checks if there's a counter record with the specified
// metric name whose labels contain all the given key/value pairs.
func (s *MetricsCollectorSpy) HasCounterRecord(metric string, labels map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.counterRecords {
		if record.Metric == metric && labelsMatch(record.Labels, labels) {
			return true
		}
	}

	return false
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = s.durationRecords[:0]
	s.counterRecords = s.counterRecords[:0]
	s.valueRecords = s.valueRecords[:0]
}

func copyLabels(labels map[string]string) map[string]string {
	labelsCopy := make(map[string]string, len(labels))
	for k, v := range labels {
		labelsCopy[k] = v
	}

	return labelsCopy
}

func labelsMatch(recorded map[string]string, expected map[string]string) bool {
	for key, value := range expected {
		if recorded[key] != value {
			return false
		}
	}

	return true
}

// Compile-time check to ensure MetricsCollectorSpy implements the MetricsCollector interface.
var _ eventbus.MetricsCollector = (*MetricsCollectorSpy)(nil)
