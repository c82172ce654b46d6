//go:build !integration && !e2e

package pattern

import (
	"errors"
	"testing"
	"time"

	"reactor.de/timehandler/internal/domain"
)

func TestFormat(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	instant := time.Date(2025, time.April, 5, 13, 5, 9, 42000000, time.UTC)

	tests := []struct {
		name    string
		pattern string
		t       time.Time
		want    string
	}{
		{"date", "%Y-%m-%d", instant, "2025-04-05"},
		{"time", "%H:%M:%S", instant, "13:05:09"},
		{"document", "%B %Y", instant, "April 2025"},
		{"log bracket", "[%Y-%m-%d %H:%M]", instant, "[2025-04-05 13:05]"},
		{"timestamp", "%Y-%m-%d %H:%M:%S", instant, "2025-04-05 13:05:09"},
		{"shorthands", "%F %T", instant, "2025-04-05 13:05:09"},
		{"twelve hour", "%I:%M %p", instant, "01:05 PM"},
		{"two digit year", "%d/%m/%y", instant, "05/04/25"},
		{"space padded day", "%e %b", instant, " 5 Apr"},
		{"h is b", "%h", instant, "Apr"},
		{"weekday names", "%a %A", instant, "Sat Saturday"},
		{"day of year", "%j", instant, "095"},
		{"microseconds", "%S.%f", instant, "09.042000"},
		{"offset utc", "%z %Z", instant, "+0000 UTC"},
		{"offset london", "%H:%M %z %Z", instant.In(london), "14:05 +0100 BST"},
		{"percent literal", "100%% at %H", instant, "100% at 13"},
		{"literals that look like layouts", "Jan 2006 %Y", instant, "Jan 2006 2025"},
		{"empty", "", instant, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.t, tt.pattern)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		offset  int
	}{
		{"unknown directive", "%Y-%Q", 3},
		{"dangling percent", "%Y-%m-%", 6},
		{"gnu flag", "%-d", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.pattern)
			}
			var pe *domain.PatternError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not *domain.PatternError", err)
			}
			if pe.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", pe.Offset, tt.offset)
			}
			if !errors.Is(err, domain.ErrInvalidPattern) {
				t.Error("error should match domain.ErrInvalidPattern")
			}
		})
	}
}

func TestLayout(t *testing.T) {
	p, err := Compile("[%F %H:%M]")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got, want := p.Layout(), "[2006-1-2 15:4]"; got != want {
		t.Errorf("Layout() = %q, want %q", got, want)
	}
	if p.String() != "[%F %H:%M]" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 23, 59, 59, 999999000, time.UTC),
		time.Date(2024, time.February, 29, 7, 8, 9, 123456000, time.UTC),
		time.Date(2000, time.July, 4, 12, 30, 0, 0, time.UTC),
	}
	patterns := []struct {
		pattern   string
		precision func(time.Time) time.Time
	}{
		{"%Y-%m-%d", func(t time.Time) time.Time { return t.Truncate(24 * time.Hour) }},
		{"%Y-%m-%d %H:%M:%S", func(t time.Time) time.Time { return t.Truncate(time.Second) }},
		{"%Y%m%dT%H%M%S.%f", func(t time.Time) time.Time { return t.Truncate(time.Microsecond) }},
		{"[%Y-%m-%d %H:%M]", func(t time.Time) time.Time { return t.Truncate(time.Minute) }},
		{"%d %B %Y, %I:%M:%S %p", func(t time.Time) time.Time { return t.Truncate(time.Second) }},
		{"%Y-%j %H:%M", func(t time.Time) time.Time { return t.Truncate(time.Minute) }},
		{"%a %d %b %y %T %z", func(t time.Time) time.Time { return t.Truncate(time.Second) }},
	}

	for _, p := range patterns {
		for _, instant := range instants {
			text, err := Format(instant, p.pattern)
			if err != nil {
				t.Fatalf("Format(%q): %v", p.pattern, err)
			}
			back, err := Parse(text, p.pattern, time.UTC)
			if err != nil {
				t.Fatalf("Parse(%q, %q): %v", text, p.pattern, err)
			}
			if want := p.precision(instant); !back.Equal(want) {
				t.Errorf("round trip %q via %q = %v, want %v", text, p.pattern, back, want)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	got, err := Parse("2025-04-15", "%Y-%m-%d", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("Parse with nil location = %v, want %v in UTC", got, want)
	}

	got, err = Parse("2025-04-15 09:00", "%Y-%m-%d %H:%M", tokyo)
	if err != nil {
		t.Fatalf("Parse in Tokyo: %v", err)
	}
	if want := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Parse in Tokyo = %v, want %v", got, want)
	}

	got, err = Parse("2025-04-15 09:00 +0200", "%Y-%m-%d %H:%M %z", time.UTC)
	if err != nil {
		t.Fatalf("Parse with offset: %v", err)
	}
	if want := time.Date(2025, 4, 15, 7, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Parse with offset = %v, want %v", got, want)
	}
}

func TestParseLenientFields(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    time.Time
	}{
		{"unpadded month and day", "2025-4-5", "%Y-%m-%d", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)},
		{"mixed padding", "2025-04-5", "%Y-%m-%d", time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)},
		{"unpadded clock", "7:5:3", "%H:%M:%S", time.Date(0, 1, 1, 7, 5, 3, 0, time.UTC)},
		{"unpadded twelve hour", "3:07 PM", "%I:%M %p", time.Date(0, 1, 1, 15, 7, 0, 0, time.UTC)},
		{"twelve am is midnight", "12:30 AM", "%I:%M %p", time.Date(0, 1, 1, 0, 30, 0, 0, time.UTC)},
		{"one fraction digit", "12:30:01.5", "%H:%M:%S.%f", time.Date(0, 1, 1, 12, 30, 1, 500000000, time.UTC)},
		{"three fraction digits", "12:30:01,042", "%H:%M:%S,%f", time.Date(0, 1, 1, 12, 30, 1, 42000000, time.UTC)},
		{"short day of year", "2025-9", "%Y-%j", time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
		{"padded still accepted", "2025-04-05 09:07:03", "%F %T", time.Date(2025, 4, 5, 9, 7, 3, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.pattern, time.UTC)
			if err != nil {
				t.Fatalf("Parse(%q, %q): %v", tt.text, tt.pattern, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMeridiemPatterns(t *testing.T) {
	// Formatting is unaffected; only parsing would misread the hour.
	instant := time.Date(2025, time.April, 5, 9, 0, 0, 0, time.UTC)
	for _, p := range []string{"%H pm", "%H %p"} {
		if _, err := Format(instant, p); err != nil {
			t.Errorf("Format(%q) error: %v", p, err)
		}
	}

	tests := []struct {
		text    string
		pattern string
	}{
		{"09 pm", "%H pm"},
		{"09 PM", "%H PM"},
		{"09 PM", "%H %p"},
		{"PM 09:00", "%p %H:%M"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.text, tt.pattern, time.UTC)
		if !errors.Is(err, domain.ErrInvalidPattern) {
			t.Errorf("Parse(%q, %q) error = %v, want ErrInvalidPattern", tt.text, tt.pattern, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		pattern   string
		wantParse bool // DateParseError, otherwise PatternError
	}{
		{"not a date", "not-a-date", "%Y-%m-%d", true},
		{"trailing text", "2025-04-15 extra", "%Y-%m-%d", true},
		{"wrong separator", "2025/04/15", "%Y-%m-%d", true},
		{"month out of range", "2025-13-01", "%Y-%m-%d", true},
		{"fraction without separator", "12345678", "%S%f", false},
		{"digit literal", "2025 1 04", "%Y 1 %m", false},
		{"layout word literal", "Monday 2025", "Mon %Y", false},
		{"bad directive", "2025", "%Q", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, tt.pattern, time.UTC)
			if err == nil {
				t.Fatalf("Parse(%q, %q) succeeded, want error", tt.text, tt.pattern)
			}
			if got := errors.Is(err, domain.ErrDateParse); got != tt.wantParse {
				t.Errorf("errors.Is(err, ErrDateParse) = %v, want %v (err: %v)", got, tt.wantParse, err)
			}
			if got := errors.Is(err, domain.ErrInvalidPattern); got == tt.wantParse {
				t.Errorf("errors.Is(err, ErrInvalidPattern) = %v, want %v (err: %v)", got, !tt.wantParse, err)
			}
		})
	}
}

func TestLookupCaches(t *testing.T) {
	a, err := Lookup("%Y-%m-%d")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	b, err := Lookup("%Y-%m-%d")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if a != b {
		t.Error("Lookup should return the cached pattern on the second call")
	}
	if _, err := Lookup("%Q"); err == nil {
		t.Error("Lookup should not cache or accept an invalid pattern")
	}
}
