package report

import (
	"github.com/waylo/companion/backend/internal/models"
)

// Sentiments is the closed mood vocabulary the weekday histogram counts.
var Sentiments = []string{"neutral", "happy", "anxious", "sad", "negative", "excited", "angry"}

// Weekdays lists the short weekday names in display order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsKnownSentiment reports whether tag belongs to the closed vocabulary.
func IsKnownSentiment(tag string) bool {
	for _, s := range Sentiments {
		if s == tag {
			return true
		}
	}
	return false
}

// SentimentCounts maps a mood tag to how many times it was seen.
type SentimentCounts map[string]int

func newVocabularyCounts() SentimentCounts {
	c := make(SentimentCounts, len(Sentiments))
	for _, s := range Sentiments {
		c[s] = 0
	}
	return c
}

// WeekdaySentiments maps a short weekday name to its mood counts.
type WeekdaySentiments map[string]SentimentCounts

// DateSentiments maps an ISO date to its mood counts.
type DateSentiments map[string]SentimentCounts

// SentimentsByWeekday counts vocabulary moods per weekday. A weekday shows up
// with every vocabulary tag at zero once any known tag lands on it; tags
// outside the vocabulary are dropped and never create a weekday.
func SentimentsByWeekday(events []models.SentimentEvent, cal Calendar) WeekdaySentiments {
	out := make(WeekdaySentiments)
	for _, e := range events {
		if !IsKnownSentiment(e.Sentiment) {
			continue
		}
		day := cal.WeekdayName(e.Timestamp)
		counts, ok := out[day]
		if !ok {
			counts = newVocabularyCounts()
			out[day] = counts
		}
		counts[e.Sentiment]++
	}
	return out
}

// SentimentsByDate counts every non-empty mood tag per calendar date, with
// no vocabulary restriction.
func SentimentsByDate(events []models.SentimentEvent, cal Calendar) DateSentiments {
	out := make(DateSentiments)
	for _, e := range events {
		if e.Sentiment == "" {
			continue
		}
		date := cal.DateOf(e.Timestamp).String()
		counts, ok := out[date]
		if !ok {
			counts = make(SentimentCounts)
			out[date] = counts
		}
		counts[e.Sentiment]++
	}
	return out
}
