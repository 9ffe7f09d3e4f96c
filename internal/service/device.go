package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/repository"
)

var (
	// ErrDeviceAlreadyPaired is returned when the parent already paired this toy.
	ErrDeviceAlreadyPaired = errors.New("device already paired")
	// ErrDeviceNotPaired hides other parents' toys behind a not-found.
	ErrDeviceNotPaired = errors.New("device not paired")
)

const defaultDeviceName = "My companion"

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service
func NewDeviceService(deviceRepo repository.DeviceRepository) DeviceService {
	return &deviceService{deviceRepo: deviceRepo}
}

func (s *deviceService) PairDevice(ctx context.Context, userID string, req *models.PairDeviceRequest) (*models.Device, error) {
	deviceID, err := NormalizeDeviceID(req.DeviceID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultDeviceName
	}

	device, err := s.deviceRepo.Create(ctx, &models.Device{
		UserID:   userID,
		DeviceID: deviceID,
		Name:     name,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDeviceAlreadyPaired, deviceID)
		}
		return nil, fmt.Errorf("failed to pair device: %w", err)
	}

	logger.Ctx(ctx).Info("device paired", logger.DeviceID(deviceID))
	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID string) ([]models.Device, error) {
	devices, err := s.deviceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

// RequirePaired accepts the identifier in any supported spelling.
func (s *deviceService) RequirePaired(ctx context.Context, userID, deviceID string) (*models.Device, error) {
	canonical, err := NormalizeDeviceID(deviceID)
	if err != nil {
		return nil, err
	}

	device, err := s.deviceRepo.GetForUser(ctx, userID, canonical)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDeviceNotPaired, canonical)
		}
		return nil, fmt.Errorf("failed to load device: %w", err)
	}
	return device, nil
}
