package report

import (
	"fmt"
	"sort"

	"github.com/waylo/companion/backend/internal/models"
)

// WeeklyBucket holds the measured days that fall in one report week.
// Week 1 is the calendar week containing the earliest measured day.
type WeeklyBucket struct {
	Week    string          `json:"week"`
	Index   int             `json:"index"`
	Entries []DailyDuration `json:"entries"`
}

// WeekLabel formats a 1-based week index as shown in reports.
func WeekLabel(index int) string {
	return fmt.Sprintf("Week %d", index)
}

// WeeklyRanges groups measured days into report weeks. It does its own
// per-day grouping rather than reusing DailyRanges, so gap-filled zero days
// never appear here and weeks with no measured day are absent.
// Buckets are ordered by week index and entries by date.
func WeeklyRanges(events []models.UsageEvent, cal Calendar) []WeeklyBucket {
	measured := measuredDays(groupByDate(events, cal))
	if len(measured) == 0 {
		return []WeeklyBucket{}
	}

	earliest := measured[0].Date

	byIndex := make(map[int]*WeeklyBucket)
	for _, day := range measured {
		idx := cal.CalendarWeeksBetween(day.Date, earliest) + 1
		b, ok := byIndex[idx]
		if !ok {
			b = &WeeklyBucket{Week: WeekLabel(idx), Index: idx}
			byIndex[idx] = b
		}
		b.Entries = append(b.Entries, day)
	}

	out := make([]WeeklyBucket, 0, len(byIndex))
	for _, b := range byIndex {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// WeeklyMap is the keyed form of a weekly report ("Week N" -> days).
type WeeklyMap map[string][]DailyDuration

// ToMap re-keys ordered buckets by their week label.
func ToMap(buckets []WeeklyBucket) WeeklyMap {
	m := make(WeeklyMap, len(buckets))
	for _, b := range buckets {
		m[b.Week] = b.Entries
	}
	return m
}

// WeekHours sums the hours of every bucket.
func WeekHours(b WeeklyBucket) int {
	return TotalHours(b.Entries)
}
