package repository

//go:generate mockgen -source=interfaces.go -destination=mock_repository.go -package=repository

import (
	"context"

	"github.com/waylo/companion/backend/internal/models"
)

// ToyLogRepository reads the conversation log a toy uploads.
type ToyLogRepository interface {
	ListByDevice(ctx context.Context, deviceID string) ([]models.ToyLog, error)
}

// SentimentRepository reads the mood tags detected per conversation.
type SentimentRepository interface {
	ListByDevice(ctx context.Context, deviceID string) ([]models.SentimentEvent, error)
}

// InterestRepository reads topic intensity rows.
type InterestRepository interface {
	ListByInterest(ctx context.Context, deviceID, interest string) ([]models.InterestEvent, error)
}

// UserRepository defines the interface for user profile access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// DeviceRepository stores which toys a parent has paired.
type DeviceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Device, error)
	GetForUser(ctx context.Context, userID, deviceID string) (*models.Device, error)
	Create(ctx context.Context, device *models.Device) (*models.Device, error)
}
