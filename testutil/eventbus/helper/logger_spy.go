package helper

import (
	"sync"

	"github.com/eventflux/domain-eventbus-go/eventbus"
)

// LoggerSpy is a Logger implementation that captures log calls for testing.
type LoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{
		records: make([]SpyLogRecord, 0),
	}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args...)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args...)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args...)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args...)
}

func (s *LoggerSpy) record(level string, msg string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
	})
}

// GetRecords returns a copy of all captured log records.
func (s *LoggerSpy) GetRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// HasLog checks if a log with the specified level and message exists.
func (s *LoggerSpy) HasLog(level string, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// Reset clears all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// Compile-time check to ensure LoggerSpy implements the Logger interface.
var _ eventbus.Logger = (*LoggerSpy)(nil)
