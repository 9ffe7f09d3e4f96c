package report

import (
	"math"
	"sort"

	"github.com/waylo/companion/backend/internal/models"
)

// DailyDuration is how many hours a toy was in use on one calendar day,
// measured from the first to the last interaction of that day.
type DailyDuration struct {
	Date  CalendarDate `json:"date"`
	Hours int          `json:"hours"`
}

// dayBounds tracks the earliest and latest interaction seen on one day.
type dayBounds struct {
	first, last int64
	count       int
}

func (b *dayBounds) add(ts int64) {
	if b.count == 0 || ts < b.first {
		b.first = ts
	}
	if b.count == 0 || ts > b.last {
		b.last = ts
	}
	b.count++
}

// hours rounds the first-to-last span to whole hours, half up.
func (b *dayBounds) hours() int {
	return int(math.Round(float64(b.last-b.first) / 3600))
}

// groupByDate buckets usage timestamps (whole seconds) by calendar day.
func groupByDate(events []models.UsageEvent, cal Calendar) map[CalendarDate]*dayBounds {
	days := make(map[CalendarDate]*dayBounds)
	for _, e := range events {
		date := cal.DateOf(e.Timestamp)
		b, ok := days[date]
		if !ok {
			b = &dayBounds{}
			days[date] = b
		}
		b.add(e.Timestamp.Unix())
	}
	return days
}

// measuredDays returns one entry per day with at least two interactions.
// A single interaction has no span to measure.
func measuredDays(days map[CalendarDate]*dayBounds) []DailyDuration {
	out := make([]DailyDuration, 0, len(days))
	for date, b := range days {
		if b.count < 2 {
			continue
		}
		out = append(out, DailyDuration{Date: date, Hours: b.hours()})
	}
	sortByDate(out)
	return out
}

// DailyRanges computes per-day usage hours for one device. Days between the
// first and last measured day that have no measurement are filled in with
// zero hours. The result is sorted by date.
func DailyRanges(events []models.UsageEvent, cal Calendar) []DailyDuration {
	measured := measuredDays(groupByDate(events, cal))
	if len(measured) == 0 {
		return []DailyDuration{}
	}

	minDate := measured[0].Date
	maxDate := measured[len(measured)-1].Date

	out := make([]DailyDuration, 0, maxDate.DaysSince(minDate)+1)
	i := 0
	for d := minDate; !d.After(maxDate); d = d.AddDays(1) {
		if i < len(measured) && measured[i].Date == d {
			out = append(out, measured[i])
			i++
			continue
		}
		out = append(out, DailyDuration{Date: d, Hours: 0})
	}
	return out
}

func sortByDate(entries []DailyDuration) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

// TotalHours sums the hours of a daily series.
func TotalHours(entries []DailyDuration) int {
	total := 0
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

