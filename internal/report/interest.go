package report

import (
	"fmt"
	"time"

	"github.com/waylo/companion/backend/internal/models"
)

// Intensity is the signal shown next to an interest topic.
type Intensity string

const (
	IntensityZero     Intensity = "zero"
	IntensityPositive Intensity = "positive"
	IntensityNegative Intensity = "negative"
)

// ClassifyIntensity looks only at the first record: no records is zero, a
// first intensity above zero is positive, anything else is negative.
// Later records never change the answer.
func ClassifyIntensity(records []models.InterestEvent) Intensity {
	if len(records) == 0 {
		return IntensityZero
	}
	if records[0].Intensity > 0 {
		return IntensityPositive
	}
	return IntensityNegative
}

// RelativeAge renders how long ago t was, in the largest whole unit:
// "2 years ago", "1 month ago", "3 days ago" or "Today".
func RelativeAge(t, now time.Time) string {
	if years := wholeYears(t, now); years > 0 {
		return plural(years, "year")
	}
	if months := wholeMonths(t, now); months > 0 {
		return plural(months, "month")
	}
	if days := int(now.Sub(t).Hours() / 24); days > 0 {
		return plural(days, "day")
	}
	return "Today"
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

func wholeMonths(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if from.AddDate(0, months, 0).After(to) {
		months--
	}
	return months
}

func wholeYears(from, to time.Time) int {
	return wholeMonths(from, to) / 12
}
