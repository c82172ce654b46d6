package clock

import (
	"time"

	"reactor.de/timehandler/internal/domain"
)

// Service implements the Clock interface on the system clock.
type Service struct{}

// NewService creates a new real clock service.
func NewService() domain.Clock {
	return &Service{}
}

// Now returns the current time in the host's local zone.
func (s *Service) Now() time.Time {
	return now()
}

// Fixed is a Clock that always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
