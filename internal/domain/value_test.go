//go:build !integration && !e2e

package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestValueKinds(t *testing.T) {
	instant := time.Date(2025, 4, 15, 13, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    Value
		kind     ValueKind
		isText   bool
		isTime   bool
		asString string
	}{
		{"instant", InstantValue(instant), KindInstant, false, true, "2025-04-15T13:05:00Z"},
		{"text", TextValue("2025-04-15"), KindText, true, false, "2025-04-15"},
		{"empty text is still text", TextValue(""), KindText, true, false, ""},
		{"zero value", Value{}, KindInvalid, false, false, "<invalid value>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.value.Kind(), tt.kind)
			}
			if _, ok := tt.value.Text(); ok != tt.isText {
				t.Errorf("Text() ok = %v, want %v", ok, tt.isText)
			}
			if _, ok := tt.value.Instant(); ok != tt.isTime {
				t.Errorf("Instant() ok = %v, want %v", ok, tt.isTime)
			}
			if got := tt.value.String(); got != tt.asString {
				t.Errorf("String() = %q, want %q", got, tt.asString)
			}
		})
	}
}

func TestUnitKnown(t *testing.T) {
	for _, u := range []Unit{UnitDays, UnitHours, UnitMinutes, UnitSeconds} {
		if !u.Known() {
			t.Errorf("%q should be known", u)
		}
	}
	for _, u := range []Unit{"", "Days", "weeks", "bogus-unit"} {
		if u.Known() {
			t.Errorf("%q should not be known", u)
		}
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	cause := errors.New("boom")

	tzErr := fmt.Errorf("wrapped: %w", &UnknownTimezoneError{Name: "Mars/Olympus", Err: cause})
	if !errors.Is(tzErr, ErrUnknownTimezone) {
		t.Error("UnknownTimezoneError should match ErrUnknownTimezone")
	}
	if !errors.Is(tzErr, cause) {
		t.Error("UnknownTimezoneError should unwrap to its cause")
	}

	parseErr := &DateParseError{Text: "not-a-date", Pattern: DefaultDatePattern}
	if !errors.Is(parseErr, ErrDateParse) {
		t.Error("DateParseError should match ErrDateParse")
	}
	if errors.Is(parseErr, ErrUnknownTimezone) {
		t.Error("DateParseError must not match ErrUnknownTimezone")
	}

	var pe *PatternError
	if !errors.As(fmt.Errorf("x: %w", &PatternError{Pattern: "%Q", Reason: "unknown directive"}), &pe) {
		t.Fatal("errors.As should find PatternError")
	}
	if !errors.Is(pe, ErrInvalidPattern) {
		t.Error("PatternError should match ErrInvalidPattern")
	}
}

func TestConfigPatternDefaults(t *testing.T) {
	var nilCfg *Config
	if nilCfg.DatePattern() != DefaultDatePattern {
		t.Errorf("nil config date pattern = %q", nilCfg.DatePattern())
	}
	if nilCfg.DefaultTimezone() != "" {
		t.Errorf("nil config timezone = %q", nilCfg.DefaultTimezone())
	}

	cfg := &Config{Timezone: "Europe/London", Formats: FormatsConfig{Time: "%H:%M"}}
	if cfg.TimePattern() != "%H:%M" {
		t.Errorf("TimePattern() = %q, want %%H:%%M", cfg.TimePattern())
	}
	if cfg.TimestampPattern() != DefaultTimestampPattern {
		t.Errorf("TimestampPattern() = %q", cfg.TimestampPattern())
	}
	if cfg.DefaultTimezone() != "Europe/London" {
		t.Errorf("DefaultTimezone() = %q", cfg.DefaultTimezone())
	}
}
