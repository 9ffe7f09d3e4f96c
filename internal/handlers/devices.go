package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waylo/companion/backend/internal/apierror"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/service"
)

type DeviceHandler struct {
	deviceService service.DeviceService
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(deviceService service.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// List handles GET /api/v1/devices
func (h *DeviceHandler) List(c *gin.Context) {
	devices, err := h.deviceService.ListDevices(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

// Pair handles POST /api/v1/devices
func (h *DeviceHandler) Pair(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.PairDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(requestID, err))
		return
	}

	device, err := h.deviceService.PairDevice(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDeviceID):
			apierror.WriteProblem(c, apierror.NewInvalidDeviceError(requestID, req.DeviceID))
		case errors.Is(err, service.ErrDeviceAlreadyPaired):
			apierror.WriteProblem(c, apierror.NewConflictError(requestID, err.Error(), "This toy is already paired with your account"))
		default:
			writeFetchError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, device)
}
