package repository

import (
	"context"
	"fmt"

	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/pkg/supabase"
)

type deviceRepository struct {
	client *supabase.Client
}

// NewDeviceRepository creates a repository over paired devices.
func NewDeviceRepository(client *supabase.Client) DeviceRepository {
	return &deviceRepository{client: client}
}

func (r *deviceRepository) ListByUser(ctx context.Context, userID string) ([]models.Device, error) {
	return list[models.Device](ctx, r.client, CollectionDevices, "list_by_user", map[string]interface{}{
		"user_id": eq(userID),
		"order":   "created_at.asc",
	})
}

func (r *deviceRepository) GetForUser(ctx context.Context, userID, deviceID string) (*models.Device, error) {
	devices, err := list[models.Device](ctx, r.client, CollectionDevices, "get_for_user", map[string]interface{}{
		"user_id":         eq(userID),
		"toy_mac_address": eq(deviceID),
		"limit":           1,
	})
	if err != nil {
		return nil, err
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("device %s: %w", deviceID, ErrNotFound)
	}

	return &devices[0], nil
}

// Create relies on the (user_id, toy_mac_address) unique key; a repeat
// pairing wraps ErrDuplicate.
func (r *deviceRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {
	data := map[string]interface{}{
		"user_id":         device.UserID,
		"toy_mac_address": device.DeviceID,
		"name":            device.Name,
	}

	return insertOne[models.Device](ctx, r.client, CollectionDevices, "create", data)
}
