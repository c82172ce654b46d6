package domain

import (
	"fmt"
	"time"
)

// ValueKind tells which case of a Value is populated.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindInstant
	KindText
)

func (k ValueKind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is either an instant or a piece of text still to be parsed.
// The zero Value is invalid.
type Value struct {
	kind    ValueKind
	instant time.Time
	text    string
}

// InstantValue wraps an already parsed instant.
func InstantValue(t time.Time) Value {
	return Value{kind: KindInstant, instant: t}
}

// TextValue wraps text that is parsed with DefaultDatePattern on use.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

func (v Value) Kind() ValueKind { return v.kind }

// Instant returns the wrapped instant and whether v holds one.
func (v Value) Instant() (time.Time, bool) {
	return v.instant, v.kind == KindInstant
}

// Text returns the wrapped text and whether v holds text.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) String() string {
	switch v.kind {
	case KindInstant:
		return v.instant.Format(time.RFC3339Nano)
	case KindText:
		return v.text
	default:
		return fmt.Sprintf("<%s value>", v.kind)
	}
}
