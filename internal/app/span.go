package app

import "time"

const secondsPerDay = 24 * 60 * 60

// span is a signed elapsed time kept as whole seconds plus a nanosecond
// remainder in [0, 1e9). Unlike time.Duration it does not saturate past
// roughly 292 years.
type span struct {
	seconds int64
	nanos   int64
}

func between(start, end time.Time) span {
	secs := end.Unix() - start.Unix()
	nanos := int64(end.Nanosecond() - start.Nanosecond())
	if nanos < 0 {
		secs--
		nanos += int64(time.Second)
	}
	return span{seconds: secs, nanos: nanos}
}

// days floors to whole days, so one hour before start is -1.
func (s span) days() int64 {
	d := s.seconds / secondsPerDay
	if s.seconds%secondsPerDay < 0 {
		d--
	}
	return d
}

func (s span) totalSeconds() float64 {
	return float64(s.seconds) + float64(s.nanos)/float64(time.Second)
}
