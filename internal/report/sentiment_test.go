package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/waylo/companion/backend/internal/models"
)

func moods(t *testing.T, pairs ...string) []models.SentimentEvent {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("moods wants timestamp/tag pairs")
	}
	var events []models.SentimentEvent
	for i := 0; i < len(pairs); i += 2 {
		events = append(events, models.SentimentEvent{
			Record:    models.Record{ID: pairs[i], DeviceID: testDevice, Timestamp: at(t, pairs[i])},
			Sentiment: pairs[i+1],
		})
	}
	return events
}

func vocabulary(overrides map[string]int) SentimentCounts {
	c := newVocabularyCounts()
	for k, v := range overrides {
		c[k] = v
	}
	return c
}

func TestSentimentsByWeekday(t *testing.T) {
	// 2024-01-01 is a Monday.
	tests := []struct {
		name   string
		events []string
		want   WeekdaySentiments
	}{
		{
			name:   "empty",
			events: nil,
			want:   WeekdaySentiments{},
		},
		{
			name: "unknown tag is dropped",
			events: []string{
				"2024-01-01T08:00:00Z", "happy",
				"2024-01-01T09:00:00Z", "wiggle",
			},
			want: WeekdaySentiments{"Mon": vocabulary(map[string]int{"happy": 1})},
		},
		{
			name: "unknown tag alone never creates a weekday",
			events: []string{
				"2024-01-02T08:00:00Z", "wiggle",
			},
			want: WeekdaySentiments{},
		},
		{
			name: "same weekday across weeks accumulates",
			events: []string{
				"2024-01-01T08:00:00Z", "sad",
				"2024-01-08T08:00:00Z", "sad",
				"2024-01-03T08:00:00Z", "angry",
				"2024-01-07T08:00:00Z", "excited",
			},
			want: WeekdaySentiments{
				"Mon": vocabulary(map[string]int{"sad": 2}),
				"Wed": vocabulary(map[string]int{"angry": 1}),
				"Sun": vocabulary(map[string]int{"excited": 1}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SentimentsByWeekday(moods(t, tt.events...), DefaultCalendar())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SentimentsByWeekday() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSentimentsByWeekdayOnlyVocabularyKeys(t *testing.T) {
	got := SentimentsByWeekday(moods(t,
		"2024-01-05T08:00:00Z", "neutral",
		"2024-01-05T09:00:00Z", "bored",
		"2024-01-05T10:00:00Z", "",
	), DefaultCalendar())

	for day, counts := range got {
		if len(counts) != len(Sentiments) {
			t.Errorf("%s: %d keys, want %d", day, len(counts), len(Sentiments))
		}
		for tag := range counts {
			if !IsKnownSentiment(tag) {
				t.Errorf("%s: unexpected tag %q", day, tag)
			}
		}
	}
}

func TestSentimentsByWeekdayUsesCalendarZone(t *testing.T) {
	events := moods(t, "2024-01-01T02:00:00Z", "happy")
	est := Calendar{Location: time.FixedZone("EST", -5*3600)}

	got := SentimentsByWeekday(events, est)

	if _, ok := got["Sun"]; !ok {
		t.Errorf("02:00 UTC Monday is Sunday evening in EST, got %v", got)
	}
}

func TestSentimentsByDate(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   DateSentiments
	}{
		{
			name:   "empty",
			events: nil,
			want:   DateSentiments{},
		},
		{
			name: "open vocabulary",
			events: []string{
				"2024-02-01T08:00:00Z", "happy",
				"2024-02-01T09:00:00Z", "happy",
				"2024-02-01T10:00:00Z", "wiggle",
			},
			want: DateSentiments{"2024-02-01": {"happy": 2, "wiggle": 1}},
		},
		{
			name: "dates are separate and empty tags skipped",
			events: []string{
				"2024-02-02T08:00:00Z", "sad",
				"2024-02-01T23:59:59Z", "sad",
				"2024-02-02T09:00:00Z", "",
			},
			want: DateSentiments{
				"2024-02-01": {"sad": 1},
				"2024-02-02": {"sad": 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SentimentsByDate(moods(t, tt.events...), DefaultCalendar())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SentimentsByDate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
