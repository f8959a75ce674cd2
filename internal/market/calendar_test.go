package market

import (
	"testing"
	"time"
)

func mustCalendar(t *testing.T) *Calendar {
	t.Helper()
	c, err := NewCalendar("America/Los_Angeles", "06:30", "13:00")
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	return c
}

func TestInSessionWeekday(t *testing.T) {
	c := mustCalendar(t)
	loc := c.Location()

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"mid session", time.Date(2026, 3, 10, 10, 0, 0, 0, loc), true}, // Tuesday
		{"at open", time.Date(2026, 3, 10, 6, 30, 0, 0, loc), true},
		{"just before open", time.Date(2026, 3, 10, 6, 29, 0, 0, loc), false},
		{"at close is exclusive", time.Date(2026, 3, 10, 13, 0, 0, 0, loc), false},
		{"just before close", time.Date(2026, 3, 10, 12, 59, 0, 0, loc), true},
		{"saturday", time.Date(2026, 3, 14, 10, 0, 0, 0, loc), false},
		{"sunday", time.Date(2026, 3, 15, 10, 0, 0, 0, loc), false},
	}
	for _, tc := range cases {
		if got := c.InSession(tc.t); got != tc.want {
			t.Errorf("%s: InSession=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestInSessionConvertsTimezone(t *testing.T) {
	c := mustCalendar(t)
	// 17:00 UTC on a Tuesday is 10:00 in Los Angeles (PDT): in session.
	utc := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	if !c.InSession(utc) {
		t.Fatalf("expected UTC timestamp inside LA session window")
	}
}

func TestSameLocalDay(t *testing.T) {
	c := mustCalendar(t)
	loc := c.Location()

	a := time.Date(2026, 3, 10, 23, 30, 0, 0, loc)
	b := time.Date(2026, 3, 10, 0, 15, 0, 0, loc)
	if !c.SameLocalDay(a, b) {
		t.Fatalf("same LA date should match")
	}

	// 2026-03-11 02:00 UTC is still 2026-03-10 in Los Angeles.
	utc := time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC)
	if !c.SameLocalDay(a, utc) {
		t.Fatalf("UTC timestamp should convert to the same LA date")
	}

	next := time.Date(2026, 3, 11, 0, 5, 0, 0, loc)
	if c.SameLocalDay(a, next) {
		t.Fatalf("day rollover should not match")
	}
}

func TestNewCalendarRejectsBadWindow(t *testing.T) {
	if _, err := NewCalendar("America/Los_Angeles", "13:00", "06:30"); err == nil {
		t.Fatalf("expected error for inverted window")
	}
	if _, err := NewCalendar("Not/AZone", "06:30", "13:00"); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}
