package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/metrics"
	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/repository"
)

// Dashboard sections.
const (
	SectionDaily            = "daily"
	SectionWeekly           = "weekly"
	SectionWeekdaySentiment = "weekday_sentiments"
	SectionDateSentiment    = "date_sentiments"
)

// Notice tells the app that one section could not be loaded.
type Notice struct {
	Section    string `json:"section"`
	Collection string `json:"collection,omitempty"`
	Message    string `json:"message"`
}

// Dashboard is everything the reports screen shows. Weekly is null when
// its fetch failed and empty when the device has no measured days.
type Dashboard struct {
	Daily             []report.DailyDuration   `json:"daily"`
	Weekly            []report.WeeklyBucket    `json:"weekly"`
	WeekdaySentiments report.WeekdaySentiments `json:"weekday_sentiments"`
	DateSentiments    report.DateSentiments    `json:"date_sentiments"`
	Notices           []Notice                 `json:"notices"`
}

var sectionMessages = map[string]string{
	SectionDaily:            "Failed to fetch daily logs",
	SectionWeekly:           "Failed to fetch weekly logs",
	SectionWeekdaySentiment: "Failed to fetch sentiment records",
	SectionDateSentiment:    "Failed to fetch sentiment records",
}

var dashboardSections = []string{SectionDaily, SectionWeekly, SectionWeekdaySentiment, SectionDateSentiment}

type dashboardService struct {
	reports ReportService
	metrics *metrics.Metrics
}

// NewDashboardService creates the dashboard on top of reports. m may be nil.
func NewDashboardService(reports ReportService, m *metrics.Metrics) DashboardService {
	return &dashboardService{reports: reports, metrics: m}
}

// Dashboard loads the four sections concurrently. Each goroutine owns its
// section and its notice slot, so a failure in one cannot touch another.
func (s *dashboardService) Dashboard(ctx context.Context, deviceID string, cal report.Calendar) *Dashboard {
	var (
		g       errgroup.Group
		d       Dashboard
		notices = make([]*Notice, len(dashboardSections))
	)

	g.Go(func() error {
		days, err := s.reports.DailyRanges(ctx, deviceID, cal)
		if err != nil {
			notices[0] = s.degrade(ctx, SectionDaily, err)
			days = []report.DailyDuration{}
		}
		d.Daily = days
		return nil
	})
	g.Go(func() error {
		weeks, err := s.reports.WeeklyRanges(ctx, deviceID, cal)
		if err != nil {
			notices[1] = s.degrade(ctx, SectionWeekly, err)
			weeks = nil
		}
		d.Weekly = weeks
		return nil
	})
	g.Go(func() error {
		hist, err := s.reports.SentimentsByWeekday(ctx, deviceID, cal)
		if err != nil {
			notices[2] = s.degrade(ctx, SectionWeekdaySentiment, err)
			hist = report.WeekdaySentiments{}
		}
		d.WeekdaySentiments = hist
		return nil
	})
	g.Go(func() error {
		hist, err := s.reports.SentimentsByDate(ctx, deviceID, cal)
		if err != nil {
			notices[3] = s.degrade(ctx, SectionDateSentiment, err)
			hist = report.DateSentiments{}
		}
		d.DateSentiments = hist
		return nil
	})

	// Every goroutine returns nil; Wait is only the join point.
	_ = g.Wait()

	d.Notices = []Notice{}
	for _, n := range notices {
		if n != nil {
			d.Notices = append(d.Notices, *n)
		}
	}
	return &d
}

func (s *dashboardService) degrade(ctx context.Context, section string, err error) *Notice {
	s.metrics.SectionDegraded(section)

	n := &Notice{Section: section, Message: sectionMessages[section]}
	if rse, ok := repository.AsRecordSourceError(err); ok {
		n.Collection = rse.Collection
	}
	logger.Ctx(ctx).Warn("dashboard section degraded",
		logger.String("section", section),
		logger.Err(err),
	)
	return n
}
