package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/metrics"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/repository"
)

// InterestReport is the rows for one topic and how the child feels about it.
type InterestReport struct {
	Interest  string                 `json:"interest"`
	Intensity report.Intensity       `json:"intensity"`
	Records   []models.InterestEvent `json:"records"`
}

// ToyLogEntry is a conversation line with a label like "3 days ago".
type ToyLogEntry struct {
	models.ToyLog
	Age string `json:"age"`
}

type reportService struct {
	toyLogs    repository.ToyLogRepository
	sentiments repository.SentimentRepository
	interests  repository.InterestRepository
	metrics    *metrics.Metrics
}

// NewReportService creates the report service. m may be nil.
func NewReportService(
	toyLogs repository.ToyLogRepository,
	sentiments repository.SentimentRepository,
	interests repository.InterestRepository,
	m *metrics.Metrics,
) ReportService {
	return &reportService{
		toyLogs:    toyLogs,
		sentiments: sentiments,
		interests:  interests,
		metrics:    m,
	}
}

func (s *reportService) DailyRanges(ctx context.Context, deviceID string, cal report.Calendar) ([]report.DailyDuration, error) {
	defer s.observe("daily", time.Now())

	events, err := s.usage(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	days := report.DailyRanges(events, cal)
	logger.Ctx(ctx).Debug("daily report built",
		logger.DeviceID(deviceID),
		logger.Int("events", len(events)),
		logger.Int("days", len(days)),
	)
	return days, nil
}

func (s *reportService) WeeklyRanges(ctx context.Context, deviceID string, cal report.Calendar) ([]report.WeeklyBucket, error) {
	defer s.observe("weekly", time.Now())

	events, err := s.usage(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	weeks := report.WeeklyRanges(events, cal)
	logger.Ctx(ctx).Debug("weekly report built",
		logger.DeviceID(deviceID),
		logger.Int("events", len(events)),
		logger.Int("weeks", len(weeks)),
	)
	return weeks, nil
}

func (s *reportService) SentimentsByWeekday(ctx context.Context, deviceID string, cal report.Calendar) (report.WeekdaySentiments, error) {
	defer s.observe("sentiments_weekday", time.Now())

	events, err := s.sentimentEvents(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	hist := report.SentimentsByWeekday(events, cal)
	logger.Ctx(ctx).Debug("weekday sentiment report built",
		logger.DeviceID(deviceID),
		logger.Int("events", len(events)),
		logger.Int("weekdays", len(hist)),
	)
	return hist, nil
}

func (s *reportService) SentimentsByDate(ctx context.Context, deviceID string, cal report.Calendar) (report.DateSentiments, error) {
	defer s.observe("sentiments_date", time.Now())

	events, err := s.sentimentEvents(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	hist := report.SentimentsByDate(events, cal)
	logger.Ctx(ctx).Debug("date sentiment report built",
		logger.DeviceID(deviceID),
		logger.Int("events", len(events)),
		logger.Int("dates", len(hist)),
	)
	return hist, nil
}

// Interest looks the topic up in lower case, the way the toy stores it.
func (s *reportService) Interest(ctx context.Context, deviceID, interest string) (*InterestReport, error) {
	defer s.observe("interest", time.Now())

	interest = strings.ToLower(strings.TrimSpace(interest))
	records, err := s.interests.ListByInterest(ctx, deviceID, interest)
	if err != nil {
		s.fetchFailed(ctx, err)
		return nil, fmt.Errorf("failed to get interest logs: %w", err)
	}
	s.metrics.RecordsFetched(repository.CollectionInterests, len(records))

	return &InterestReport{
		Interest:  interest,
		Intensity: report.ClassifyIntensity(records),
		Records:   records,
	}, nil
}

func (s *reportService) ToyLogs(ctx context.Context, deviceID string, now time.Time) ([]ToyLogEntry, error) {
	logs, err := s.toyLogs.ListByDevice(ctx, deviceID)
	if err != nil {
		s.fetchFailed(ctx, err)
		return nil, fmt.Errorf("failed to get toy logs: %w", err)
	}
	s.metrics.RecordsFetched(repository.CollectionToyLogs, len(logs))

	entries := make([]ToyLogEntry, len(logs))
	for i, l := range logs {
		entries[i] = ToyLogEntry{ToyLog: l, Age: report.RelativeAge(l.Timestamp, now)}
	}
	return entries, nil
}

func (s *reportService) usage(ctx context.Context, deviceID string) ([]models.UsageEvent, error) {
	logs, err := s.toyLogs.ListByDevice(ctx, deviceID)
	if err != nil {
		s.fetchFailed(ctx, err)
		return nil, fmt.Errorf("failed to get toy logs: %w", err)
	}
	s.metrics.RecordsFetched(repository.CollectionToyLogs, len(logs))

	events := make([]models.UsageEvent, len(logs))
	for i, l := range logs {
		events[i] = l.Usage()
	}
	return events, nil
}

func (s *reportService) sentimentEvents(ctx context.Context, deviceID string) ([]models.SentimentEvent, error) {
	events, err := s.sentiments.ListByDevice(ctx, deviceID)
	if err != nil {
		s.fetchFailed(ctx, err)
		return nil, fmt.Errorf("failed to get sentiment logs: %w", err)
	}
	s.metrics.RecordsFetched(repository.CollectionSentiments, len(events))
	return events, nil
}

func (s *reportService) fetchFailed(ctx context.Context, err error) {
	collection := "unknown"
	if rse, ok := repository.AsRecordSourceError(err); ok {
		collection = rse.Collection
	}
	s.metrics.SourceError(collection)
	logger.Ctx(ctx).Warn("record fetch failed",
		logger.Component("report"),
		logger.String("collection", collection),
		logger.Err(err),
	)
}

func (s *reportService) observe(name string, start time.Time) {
	s.metrics.ObserveReport(name, time.Since(start))
}
