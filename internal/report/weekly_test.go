package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyRangesSundayWeeks(t *testing.T) {
	// 2024-01-06 is a Saturday.
	events := usage(t,
		"2024-01-01T08:00:00Z", // single event, not measured
		"2024-01-06T08:00:00Z", "2024-01-06T10:00:00Z",
		"2024-01-07T08:00:00Z", "2024-01-07T09:00:00Z",
		"2024-01-13T08:00:00Z", "2024-01-13T12:00:00Z",
		"2024-01-22T08:00:00Z", "2024-01-22T11:00:00Z",
	)

	got := WeeklyRanges(events, DefaultCalendar())

	want := []WeeklyBucket{
		{Week: "Week 1", Index: 1, Entries: []DailyDuration{
			{Date: date(t, "2024-01-06"), Hours: 2},
		}},
		{Week: "Week 2", Index: 2, Entries: []DailyDuration{
			{Date: date(t, "2024-01-07"), Hours: 1},
			{Date: date(t, "2024-01-13"), Hours: 4},
		}},
		{Week: "Week 4", Index: 4, Entries: []DailyDuration{
			{Date: date(t, "2024-01-22"), Hours: 3},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WeeklyRanges() mismatch (-want +got):\n%s", diff)
	}
}

func TestWeeklyRangesMondayWeeks(t *testing.T) {
	events := usage(t,
		"2024-01-06T08:00:00Z", "2024-01-06T10:00:00Z",
		"2024-01-07T08:00:00Z", "2024-01-07T09:00:00Z",
		"2024-01-13T08:00:00Z", "2024-01-13T12:00:00Z",
	)
	cal := Calendar{Location: time.UTC, WeekStart: time.Monday}

	got := WeeklyRanges(events, cal)

	require.Len(t, got, 2)
	assert.Equal(t, "Week 1", got[0].Week)
	assert.Len(t, got[0].Entries, 2, "Saturday and Sunday share a Monday-started week")
	assert.Equal(t, "Week 2", got[1].Week)
	assert.Equal(t, date(t, "2024-01-13"), got[1].Entries[0].Date)
}

func TestWeeklyRangesDoesNotFillGaps(t *testing.T) {
	events := usage(t,
		"2024-01-01T08:00:00Z", "2024-01-01T10:00:00Z",
		"2024-01-03T08:00:00Z", "2024-01-03T09:00:00Z",
	)

	got := WeeklyRanges(events, DefaultCalendar())

	require.Len(t, got, 1)
	for _, e := range got[0].Entries {
		assert.NotEqual(t, date(t, "2024-01-02"), e.Date, "zero-filled days belong to the daily report only")
	}
}

func TestWeeklyRangesEmpty(t *testing.T) {
	assert.Empty(t, WeeklyRanges(nil, DefaultCalendar()))
	assert.Empty(t, WeeklyRanges(usage(t, "2024-01-01T08:00:00Z"), DefaultCalendar()))
}

func TestWeeklyRangesIndexIsMonotonic(t *testing.T) {
	var stamps []string
	start := date(t, "2024-03-01")
	for i := 0; i < 40; i += 3 {
		d := start.AddDays(i).String()
		stamps = append(stamps, d+"T07:00:00Z", d+"T09:00:00Z")
	}
	buckets := WeeklyRanges(usage(t, stamps...), DefaultCalendar())

	require.NotEmpty(t, buckets)
	assert.Equal(t, 1, buckets[0].Index)

	prevIndex := 0
	var prevDate CalendarDate
	for _, b := range buckets {
		for _, e := range b.Entries {
			if prevIndex > 0 {
				assert.True(t, e.Date.After(prevDate))
				assert.GreaterOrEqual(t, b.Index, prevIndex)
			}
			prevIndex, prevDate = b.Index, e.Date
		}
	}
}

func TestToMap(t *testing.T) {
	buckets := []WeeklyBucket{
		{Week: "Week 1", Index: 1, Entries: []DailyDuration{{Hours: 2}}},
		{Week: "Week 3", Index: 3, Entries: []DailyDuration{{Hours: 1}, {Hours: 4}}},
	}

	m := ToMap(buckets)

	require.Len(t, m, 2)
	assert.Len(t, m["Week 3"], 2)
	assert.Equal(t, 5, WeekHours(buckets[1]))
}
