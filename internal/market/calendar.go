package market

import (
	"fmt"
	"time"
)

// Calendar answers session and calendar-day questions in one fixed reference
// timezone. The session window is configuration; exchange holidays are not
// modeled.
type Calendar struct {
	loc       *time.Location
	openMins  int
	closeMins int
}

// NewCalendar builds a calendar for a timezone and an HH:MM session window.
// The open bound is inclusive, the close bound exclusive.
func NewCalendar(timezone, open, close string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	openMins, err := minutesOfDay(open)
	if err != nil {
		return nil, fmt.Errorf("session open: %w", err)
	}
	closeMins, err := minutesOfDay(close)
	if err != nil {
		return nil, fmt.Errorf("session close: %w", err)
	}
	if closeMins <= openMins {
		return nil, fmt.Errorf("session close %s must be after open %s", close, open)
	}
	return &Calendar{loc: loc, openMins: openMins, closeMins: closeMins}, nil
}

func minutesOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// InSession reports whether t falls inside the weekday trading window,
// evaluated in the calendar's timezone.
func (c *Calendar) InSession(t time.Time) bool {
	local := t.In(c.loc)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	mins := local.Hour()*60 + local.Minute()
	return mins >= c.openMins && mins < c.closeMins
}

// SameLocalDay reports whether a and b fall on the same calendar date in the
// calendar's timezone, regardless of the inputs' own locations.
func (c *Calendar) SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.loc).Date()
	by, bm, bd := b.In(c.loc).Date()
	return ay == by && am == bm && ad == bd
}

// Location exposes the reference timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}
