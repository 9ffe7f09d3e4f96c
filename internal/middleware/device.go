package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/waylo/companion/backend/internal/apierror"
	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/repository"
	"github.com/waylo/companion/backend/internal/service"
)

// DeviceKey is the gin context key holding the canonical device identifier.
const DeviceKey = "device_id"

// RequireDevice resolves the :device_id path parameter and rejects devices
// the caller has not paired. Must run after Auth.
func RequireDevice(devices service.DeviceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := apierror.GetRequestID(c)
		raw := c.Param("device_id")

		device, err := devices.RequirePaired(c.Request.Context(), c.GetString("user_id"), raw)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidDeviceID):
				apierror.AbortWithProblem(c, apierror.NewInvalidDeviceError(requestID, raw))
			case errors.Is(err, service.ErrDeviceNotPaired):
				apierror.AbortWithProblem(c, apierror.NewNotFoundError(requestID, "device", raw))
			default:
				if rse, ok := repository.AsRecordSourceError(err); ok {
					apierror.AbortWithProblem(c, apierror.NewRecordSourceError(requestID, rse.Collection))
					return
				}
				logger.Ctx(c.Request.Context()).Error("device lookup failed", logger.Err(err))
				apierror.AbortWithProblem(c, apierror.NewInternalError(requestID))
			}
			return
		}

		c.Set(DeviceKey, device.DeviceID)
		c.Request = c.Request.WithContext(logger.WithDeviceID(c.Request.Context(), device.DeviceID))
		c.Next()
	}
}
