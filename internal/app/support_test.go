package app_test

import (
	"fmt"
	"sync"
	"time"

	"reactor.de/timehandler/internal/app"
	"reactor.de/timehandler/internal/domain"
	"reactor.de/timehandler/internal/infra/clock"
)

// --- Mocks for Dependencies ---

type MockLogger struct {
	mu       sync.Mutex
	Warnings []string
	Infos    []string
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Infos = append(m.Infos, fmt.Sprintf(msg, args...))
}

func (m *MockLogger) Warning(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Warnings = append(m.Warnings, fmt.Sprintf(msg, args...))
}

func (m *MockLogger) Error(msg string, args ...interface{}) {}
func (m *MockLogger) Log(msg string)                        {}

func (m *MockLogger) WarningCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Warnings)
}

// fixedInstant is 2025-04-15 13:05:00 UTC, a Tuesday.
var fixedInstant = time.Date(2025, time.April, 15, 13, 5, 0, 0, time.UTC)

// SetupTestService builds a Service on a fixed clock.
func SetupTestService(at time.Time, cfg *domain.Config) (*app.Service, *MockLogger) {
	logger := &MockLogger{}
	return app.NewService(clock.Fixed(at), logger, cfg), logger
}
