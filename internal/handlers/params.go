package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/waylo/companion/backend/internal/apierror"
	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/middleware"
	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/repository"
)

// calendarFromQuery applies the optional ?tz= and ?week_start= overrides to
// the configured calendar.
func calendarFromQuery(c *gin.Context, base report.Calendar) (report.Calendar, bool) {
	cal := base

	if tz := c.Query("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil || tz == "Local" {
			apierror.WriteProblem(c, apierror.NewInvalidCalendarError(apierror.GetRequestID(c), "tz", tz))
			return report.Calendar{}, false
		}
		cal.Location = loc
	}

	if ws := c.Query("week_start"); ws != "" {
		weekStart, err := report.ParseWeekStart(ws)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewInvalidCalendarError(apierror.GetRequestID(c), "week_start", ws))
			return report.Calendar{}, false
		}
		cal.WeekStart = weekStart
	}

	return cal, true
}

func deviceID(c *gin.Context) string {
	return c.GetString(middleware.DeviceKey)
}

// writeFetchError maps a failed report fetch to a problem response.
func writeFetchError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	var rse *repository.RecordSourceError
	if errors.As(err, &rse) {
		apierror.WriteProblem(c, apierror.NewRecordSourceError(requestID, rse.Collection))
		return
	}

	logger.Ctx(c.Request.Context()).Error("request failed", logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
