package report

import (
	"testing"
	"time"

	"github.com/waylo/companion/backend/internal/models"
)

func interests(values ...float64) []models.InterestEvent {
	out := make([]models.InterestEvent, 0, len(values))
	for i, v := range values {
		out = append(out, models.InterestEvent{
			Record:    models.Record{ID: string(rune('a' + i)), DeviceID: testDevice},
			Interest:  "dinosaurs",
			Intensity: v,
		})
	}
	return out
}

func TestClassifyIntensity(t *testing.T) {
	tests := []struct {
		name    string
		records []models.InterestEvent
		want    Intensity
	}{
		{"no records", nil, IntensityZero},
		{"positive first", interests(3), IntensityPositive},
		{"zero first counts as negative", interests(0, 8), IntensityNegative},
		{"first record decides even if later ones are positive", interests(-5, 10, 20), IntensityNegative},
		{"first record decides even if later ones are negative", interests(1, -10, -20), IntensityPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntensity(tt.records); got != tt.want {
				t.Errorf("ClassifyIntensity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		then time.Time
		want string
	}{
		{time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), "Today"},
		{time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC), "1 day ago"},
		{time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC), "3 days ago"},
		{time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), "1 month ago"},
		{time.Date(2023, 11, 1, 12, 0, 0, 0, time.UTC), "4 months ago"},
		{time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC), "1 year ago"},
		{time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC), "2 years ago"},
		{time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC), "Today"},
	}

	for _, tt := range tests {
		if got := RelativeAge(tt.then, now); got != tt.want {
			t.Errorf("RelativeAge(%s) = %q, want %q", tt.then.Format(time.RFC3339), got, tt.want)
		}
	}
}
