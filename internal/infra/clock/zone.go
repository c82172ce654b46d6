package clock

import (
	"time"
	_ "time/tzdata" // fallback when the host has no zoneinfo

	"reactor.de/timehandler/internal/domain"
)

// LoadZone looks up an IANA identifier in the timezone database. "Local"
// is refused since it names the host setting rather than a database entry.
func LoadZone(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return nil, &domain.UnknownTimezoneError{Name: tz}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, &domain.UnknownTimezoneError{Name: tz, Err: err}
	}
	return loc, nil
}
