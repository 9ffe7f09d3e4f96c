package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/service"
)

type ReportHandler struct {
	reports   service.ReportService
	dashboard service.DashboardService
	calendar  report.Calendar
	now       func() time.Time
}

// NewReportHandler creates a report handler. cal is the default calendar
// requests override with ?tz= and ?week_start=.
func NewReportHandler(reports service.ReportService, dashboard service.DashboardService, cal report.Calendar) *ReportHandler {
	return &ReportHandler{
		reports:   reports,
		dashboard: dashboard,
		calendar:  cal,
		now:       time.Now,
	}
}

// Daily handles GET /api/v1/devices/:device_id/reports/daily
func (h *ReportHandler) Daily(c *gin.Context) {
	cal, ok := calendarFromQuery(c, h.calendar)
	if !ok {
		return
	}

	days, err := h.reports.DailyRanges(c.Request.Context(), deviceID(c), cal)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":        days,
		"total_hours": report.TotalHours(days),
	})
}

// Weekly handles GET /api/v1/devices/:device_id/reports/weekly
// ?format=map returns {"Week N": [...]} instead of the ordered list.
func (h *ReportHandler) Weekly(c *gin.Context) {
	cal, ok := calendarFromQuery(c, h.calendar)
	if !ok {
		return
	}

	weeks, err := h.reports.WeeklyRanges(c.Request.Context(), deviceID(c), cal)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	if c.Query("format") == "map" {
		c.JSON(http.StatusOK, report.ToMap(weeks))
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// WeekdaySentiments handles GET /api/v1/devices/:device_id/reports/sentiments/weekday
func (h *ReportHandler) WeekdaySentiments(c *gin.Context) {
	cal, ok := calendarFromQuery(c, h.calendar)
	if !ok {
		return
	}

	hist, err := h.reports.SentimentsByWeekday(c.Request.Context(), deviceID(c), cal)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, hist)
}

// DateSentiments handles GET /api/v1/devices/:device_id/reports/sentiments/date
func (h *ReportHandler) DateSentiments(c *gin.Context) {
	cal, ok := calendarFromQuery(c, h.calendar)
	if !ok {
		return
	}

	hist, err := h.reports.SentimentsByDate(c.Request.Context(), deviceID(c), cal)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, hist)
}

// Interest handles GET /api/v1/devices/:device_id/interests/:interest
func (h *ReportHandler) Interest(c *gin.Context) {
	result, err := h.reports.Interest(c.Request.Context(), deviceID(c), c.Param("interest"))
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Dashboard handles GET /api/v1/devices/:device_id/dashboard
// Always 200; failed sections are listed in "notices".
func (h *ReportHandler) Dashboard(c *gin.Context) {
	cal, ok := calendarFromQuery(c, h.calendar)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.dashboard.Dashboard(c.Request.Context(), deviceID(c), cal))
}

// ToyLogs handles GET /api/v1/devices/:device_id/logs
func (h *ReportHandler) ToyLogs(c *gin.Context) {
	entries, err := h.reports.ToyLogs(c.Request.Context(), deviceID(c), h.now())
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
