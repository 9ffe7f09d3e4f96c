package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/waylo/companion/backend/internal/metrics"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/repository"
)

func TestDashboardAllSectionsLoad(t *testing.T) {
	reports, m := newReportService(t)
	m.toyLogs.EXPECT().ListByDevice(gomock.Any(), testDevice).Return(toyLogsAt(t,
		"2024-03-04T09:00:00Z", "2024-03-04T11:00:00Z",
	), nil).Times(2)
	m.sentiments.EXPECT().ListByDevice(gomock.Any(), testDevice).Return([]models.SentimentEvent{
		{Record: models.Record{Timestamp: ts(t, "2024-03-04T10:00:00Z")}, Sentiment: "happy"},
	}, nil).Times(2)

	d := NewDashboardService(reports, metrics.New()).Dashboard(context.Background(), testDevice, report.DefaultCalendar())

	require.Len(t, d.Daily, 1)
	assert.Equal(t, 2, d.Daily[0].Hours)
	require.Len(t, d.Weekly, 1)
	assert.Equal(t, "Week 1", d.Weekly[0].Week)
	assert.Equal(t, 1, d.WeekdaySentiments["Mon"]["happy"])
	assert.Equal(t, 1, d.DateSentiments["2024-03-04"]["happy"])
	assert.Empty(t, d.Notices)
	assert.NotNil(t, d.Notices)
}

func TestDashboardSectionsFailIndependently(t *testing.T) {
	reports, m := newReportService(t)
	m.toyLogs.EXPECT().ListByDevice(gomock.Any(), testDevice).Return(nil, sourceFailure(repository.CollectionToyLogs)).Times(2)
	m.sentiments.EXPECT().ListByDevice(gomock.Any(), testDevice).Return([]models.SentimentEvent{
		{Record: models.Record{Timestamp: ts(t, "2024-03-05T10:00:00Z")}, Sentiment: "sad"},
	}, nil).Times(2)

	d := NewDashboardService(reports, nil).Dashboard(context.Background(), testDevice, report.DefaultCalendar())

	assert.NotNil(t, d.Daily)
	assert.Empty(t, d.Daily)
	assert.Nil(t, d.Weekly)
	assert.Equal(t, 1, d.WeekdaySentiments["Tue"]["sad"])
	assert.Equal(t, 1, d.DateSentiments["2024-03-05"]["sad"])

	require.Len(t, d.Notices, 2)
	assert.Equal(t, Notice{Section: SectionDaily, Collection: repository.CollectionToyLogs, Message: "Failed to fetch daily logs"}, d.Notices[0])
	assert.Equal(t, SectionWeekly, d.Notices[1].Section)
}

func TestDashboardEverythingFails(t *testing.T) {
	reports, m := newReportService(t)
	m.toyLogs.EXPECT().ListByDevice(gomock.Any(), gomock.Any()).Return(nil, sourceFailure(repository.CollectionToyLogs)).AnyTimes()
	m.sentiments.EXPECT().ListByDevice(gomock.Any(), gomock.Any()).Return(nil, sourceFailure(repository.CollectionSentiments)).AnyTimes()

	d := NewDashboardService(reports, metrics.New()).Dashboard(context.Background(), testDevice, report.DefaultCalendar())

	assert.Empty(t, d.Daily)
	assert.Nil(t, d.Weekly)
	assert.Empty(t, d.WeekdaySentiments)
	assert.Empty(t, d.DateSentiments)

	sections := make([]string, len(d.Notices))
	for i, n := range d.Notices {
		sections[i] = n.Section
	}
	assert.Equal(t, []string{SectionDaily, SectionWeekly, SectionWeekdaySentiment, SectionDateSentiment}, sections)
}
