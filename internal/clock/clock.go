package clock

import "time"

// Clock allows injecting time in domain/services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type pinnedDayClock struct {
	year  int
	month time.Month
	day   int
	base  Clock
}

// NewPinnedDay returns a clock that always reports the calendar day of day
// while the time of day keeps moving with base. Storefront demos use it to
// freeze "today" without freezing purchase timestamps.
func NewPinnedDay(day time.Time, base Clock) Clock {
	y, m, d := day.Date()
	return pinnedDayClock{year: y, month: m, day: d, base: base}
}

func (p pinnedDayClock) Now() time.Time {
	now := p.base.Now()
	return time.Date(p.year, p.month, p.day, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}

// Today truncates c.Now() to midnight UTC.
func Today(c Clock) time.Time {
	y, m, d := c.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
