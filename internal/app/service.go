package app

import (
	"time"

	"reactor.de/timehandler/internal/domain"
	"reactor.de/timehandler/internal/infra/clock"
	"reactor.de/timehandler/internal/pattern"
)

// Service produces, formats, parses and compares instants. It holds no
// mutable state and is safe for concurrent use; construct one at startup and
// pass it to every caller.
type Service struct {
	clock  domain.Clock
	logger domain.Logger
	cfg    *domain.Config
}

// NewService creates a new Service. A nil cfg selects all defaults.
func NewService(clock domain.Clock, logger domain.Logger, cfg *domain.Config) *Service {
	if cfg == nil {
		cfg = &domain.Config{}
	}
	return &Service{
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}
}

// Zone resolves an IANA identifier. The empty string selects the configured
// default zone, or the host's local zone when none is configured.
func (s *Service) Zone(tz string) (*time.Location, error) {
	if tz == "" {
		tz = s.cfg.DefaultTimezone()
	}
	if tz == "" {
		return time.Local, nil
	}
	return clock.LoadZone(tz)
}

// Now returns the current instant in tz (see Zone for the empty string).
func (s *Service) Now(tz string) (time.Time, error) {
	loc, err := s.Zone(tz)
	if err != nil {
		return time.Time{}, err
	}
	return s.clock.Now().In(loc), nil
}

// Format renders t with a strftime pattern.
func (s *Service) Format(t time.Time, p string) (string, error) {
	return pattern.Format(t, p)
}

func (s *Service) formatNow(p, tz string) (string, error) {
	now, err := s.Now(tz)
	if err != nil {
		return "", err
	}
	return s.Format(now, p)
}

// CurrentDate formats now with p, defaulting to the configured date pattern.
func (s *Service) CurrentDate(p, tz string) (string, error) {
	if p == "" {
		p = s.cfg.DatePattern()
	}
	return s.formatNow(p, tz)
}

// CurrentTime formats now with p, defaulting to the configured time pattern.
func (s *Service) CurrentTime(p, tz string) (string, error) {
	if p == "" {
		p = s.cfg.TimePattern()
	}
	return s.formatNow(p, tz)
}

// DocumentDate renders now as "<Month> <Year>", e.g. "April 2025".
func (s *Service) DocumentDate(tz string) (string, error) {
	return s.formatNow(domain.DocumentPattern, tz)
}

// Timestamp formats now with p, defaulting to the configured timestamp pattern.
func (s *Service) Timestamp(p, tz string) (string, error) {
	if p == "" {
		p = s.cfg.TimestampPattern()
	}
	return s.formatNow(p, tz)
}

// LogTimestamp renders now as "[YYYY-MM-DD HH:MM]".
func (s *Service) LogTimestamp(tz string) (string, error) {
	return s.formatNow(domain.LogTimestampPattern, tz)
}

// Parse reads text with p, defaulting to DefaultDatePattern. Values without
// an offset directive are UTC wall-clock values.
func (s *Service) Parse(text, p string) (time.Time, error) {
	if p == "" {
		p = domain.DefaultDatePattern
	}
	return pattern.Parse(text, p, time.UTC)
}

// ParseIn is Parse with the wall clock interpreted in tz.
func (s *Service) ParseIn(text, p, tz string) (time.Time, error) {
	if p == "" {
		p = domain.DefaultDatePattern
	}
	loc, err := s.Zone(tz)
	if err != nil {
		return time.Time{}, err
	}
	return pattern.Parse(text, p, loc)
}

// instant resolves v, parsing text with DefaultDatePattern.
func (s *Service) instant(v domain.Value) (time.Time, error) {
	switch v.Kind() {
	case domain.KindInstant:
		t, _ := v.Instant()
		return t, nil
	case domain.KindText:
		text, _ := v.Text()
		return s.Parse(text, domain.DefaultDatePattern)
	default:
		return time.Time{}, domain.ErrEmptyValue
	}
}

// FormatValue renders v with p, defaulting to DefaultDatePattern. Text is
// parsed with DefaultDatePattern first.
func (s *Service) FormatValue(v domain.Value, p string) (string, error) {
	if p == "" {
		p = domain.DefaultDatePattern
	}
	t, err := s.instant(v)
	if err != nil {
		return "", err
	}
	return s.Format(t, p)
}

// Difference returns end - start scaled to unit. Days are whole days rounded
// toward negative infinity; the other units are fractional. An unknown unit
// behaves as days.
func (s *Service) Difference(start, end domain.Value, unit domain.Unit) (float64, error) {
	from, err := s.instant(start)
	if err != nil {
		return 0, err
	}
	to, err := s.instant(end)
	if err != nil {
		return 0, err
	}

	if !unit.Known() {
		s.logger.Warning("unrecognized difference unit %q, using %s", unit, domain.UnitDays)
	}

	span := between(from, to)
	switch unit {
	case domain.UnitHours:
		return span.totalSeconds() / 3600, nil
	case domain.UnitMinutes:
		return span.totalSeconds() / 60, nil
	case domain.UnitSeconds:
		return span.totalSeconds(), nil
	default:
		return float64(span.days()), nil
	}
}
