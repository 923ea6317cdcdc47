package clock

import "time"

// Clocker reports the current time. Outgoing message dates read it.
type Clocker interface {
	Now() time.Time
}

// System reads the wall clock, optionally converted to a fixed location.
type System struct {
	loc *time.Location
}

// New returns a System clock in the process local time zone.
func New() *System {
	return &System{}
}

// NewIn returns a System clock that reports times in loc.
func NewIn(loc *time.Location) *System {
	return &System{loc: loc}
}

// Now returns the current wall-clock time.
func (s *System) Now() time.Time {
	now := time.Now()
	if s != nil && s.loc != nil {
		return now.In(s.loc)
	}
	return now
}

// Fixed is a Clocker frozen at a single instant.
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
