package domain

// Unit selects the scale of a difference between two instants.
type Unit string

const (
	UnitDays    Unit = "days"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
	UnitSeconds Unit = "seconds"
)

// Known reports whether u is one of the four supported units. Unknown
// units are still accepted by the clock service and behave as days.
func (u Unit) Known() bool {
	switch u {
	case UnitDays, UnitHours, UnitMinutes, UnitSeconds:
		return true
	}
	return false
}
