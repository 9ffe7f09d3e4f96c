// Package report derives usage-duration and sentiment aggregates from a
// device's raw log records. Every function here is pure: it takes records that
// were already fetched and returns a freshly allocated aggregate.
package report

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for keys and JSON.
const DateLayout = "2006-01-02"

// CalendarDate is a year-month-day value with no time of day and no zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) CalendarDate {
	y, m, d := t.In(loc).Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return DateOf(t, time.UTC), nil
}

// midnight anchors the date at UTC midnight so day arithmetic never crosses a
// DST transition.
func (d CalendarDate) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) String() string {
	return d.midnight().Format(DateLayout)
}

// AddDays returns the date n days after d (n may be negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.midnight().AddDate(0, 0, n), time.UTC)
}

func (d CalendarDate) Before(o CalendarDate) bool { return d.midnight().Before(o.midnight()) }
func (d CalendarDate) After(o CalendarDate) bool  { return o.Before(d) }

func (d CalendarDate) Weekday() time.Weekday { return d.midnight().Weekday() }

// DaysSince returns the signed number of days from o to d.
func (d CalendarDate) DaysSince(o CalendarDate) int {
	return int(d.midnight().Sub(o.midnight()).Hours() / 24)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Calendar fixes the zone used to turn timestamps into calendar dates and the
// day on which a calendar week begins.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

// DefaultCalendar buckets in UTC with Sunday-started weeks.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Sunday}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// DateOf returns the calendar date of t in the calendar's zone.
func (c Calendar) DateOf(t time.Time) CalendarDate {
	return DateOf(t, c.location())
}

// WeekdayName returns the short English weekday name (Mon..Sun) of t in the
// calendar's zone.
func (c Calendar) WeekdayName(t time.Time) string {
	return t.In(c.location()).Format("Mon")
}

// StartOfWeek returns the first day of the calendar week containing d.
func (c Calendar) StartOfWeek(d CalendarDate) CalendarDate {
	offset := (int(d.Weekday()) - int(c.WeekStart) + 7) % 7
	return d.AddDays(-offset)
}

// CalendarWeeksBetween counts the week boundaries crossed going from right to
// left. Dates inside the same calendar week are 0 apart even when they are
// six days apart; a Saturday and the following Sunday are 1 apart with
// Sunday-started weeks.
func (c Calendar) CalendarWeeksBetween(left, right CalendarDate) int {
	return c.StartOfWeek(left).DaysSince(c.StartOfWeek(right)) / 7
}

// ParseWeekStart accepts "sunday" or "monday" (any case, 3-letter forms too).
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sun", "sunday":
		return time.Sunday, nil
	case "mon", "monday":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("unsupported week start %q: want sunday or monday", s)
	}
}

// NewCalendar builds a calendar from an IANA zone name and a week start name.
func NewCalendar(timezone, weekStart string) (Calendar, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return Calendar{}, fmt.Errorf("unknown timezone %q: %w", timezone, err)
		}
		loc = l
	}

	ws, err := ParseWeekStart(weekStart)
	if err != nil {
		return Calendar{}, err
	}

	return Calendar{Location: loc, WeekStart: ws}, nil
}
