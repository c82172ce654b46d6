package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrDateParse       = errors.New("date does not match pattern")
	ErrInvalidPattern  = errors.New("invalid format pattern")
	ErrEmptyValue      = errors.New("value holds neither an instant nor text")
	ErrValidation      = errors.New("configuration validation failed")
	ErrUnknownKey      = errors.New("unknown configuration key")
)

// UnknownTimezoneError reports a timezone identifier that is not in the IANA database.
type UnknownTimezoneError struct {
	Name string
	Err  error // lookup error from the time package, may be nil
}

func (e *UnknownTimezoneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown timezone %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("unknown timezone %q", e.Name)
}

func (e *UnknownTimezoneError) Unwrap() error { return e.Err }

func (e *UnknownTimezoneError) Is(target error) bool { return target == ErrUnknownTimezone }

// DateParseError reports text that could not be parsed with a pattern.
type DateParseError struct {
	Text    string
	Pattern string
	Err     error
}

func (e *DateParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q with pattern %q: %v", e.Text, e.Pattern, e.Err)
	}
	return fmt.Sprintf("cannot parse %q with pattern %q", e.Text, e.Pattern)
}

func (e *DateParseError) Unwrap() error { return e.Err }

func (e *DateParseError) Is(target error) bool { return target == ErrDateParse }

// PatternError reports a malformed strftime pattern. Offset is the byte
// position of the offending directive.
type PatternError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }
