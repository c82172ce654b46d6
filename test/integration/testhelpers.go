//go:build integration

package integration

import (
	"fmt"
	"sync"
)

// MockLogger records warnings for integration testing.
type MockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *MockLogger) Info(msg string, args ...interface{})  {}
func (m *MockLogger) Error(msg string, args ...interface{}) {}
func (m *MockLogger) Log(msg string)                        {}

func (m *MockLogger) Warning(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprintf(msg, args...))
}

func (m *MockLogger) Warnings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.warnings...)
}
