package service

import (
	"context"
	"time"

	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/report"
)

// ReportService turns a device's logs into the parent-facing reports.
type ReportService interface {
	DailyRanges(ctx context.Context, deviceID string, cal report.Calendar) ([]report.DailyDuration, error)
	WeeklyRanges(ctx context.Context, deviceID string, cal report.Calendar) ([]report.WeeklyBucket, error)
	SentimentsByWeekday(ctx context.Context, deviceID string, cal report.Calendar) (report.WeekdaySentiments, error)
	SentimentsByDate(ctx context.Context, deviceID string, cal report.Calendar) (report.DateSentiments, error)
	Interest(ctx context.Context, deviceID, interest string) (*InterestReport, error)
	ToyLogs(ctx context.Context, deviceID string, now time.Time) ([]ToyLogEntry, error)
}

// DashboardService assembles every report section in one call. It never
// fails; broken sections fall back to their defaults.
type DashboardService interface {
	Dashboard(ctx context.Context, deviceID string, cal report.Calendar) *Dashboard
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

// DeviceService manages which toys a parent may read reports for.
type DeviceService interface {
	PairDevice(ctx context.Context, userID string, req *models.PairDeviceRequest) (*models.Device, error)
	ListDevices(ctx context.Context, userID string) ([]models.Device, error)
	RequirePaired(ctx context.Context, userID, deviceID string) (*models.Device, error)
}
