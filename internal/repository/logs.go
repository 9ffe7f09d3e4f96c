package repository

import (
	"context"

	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/pkg/supabase"
)

type toyLogRepository struct {
	client *supabase.Client
}

// NewToyLogRepository creates a repository over toy_logs.
func NewToyLogRepository(client *supabase.Client) ToyLogRepository {
	return &toyLogRepository{client: client}
}

func (r *toyLogRepository) ListByDevice(ctx context.Context, deviceID string) ([]models.ToyLog, error) {
	return list[models.ToyLog](ctx, r.client, CollectionToyLogs, "list_by_device", map[string]interface{}{
		"toy_mac_address": eq(deviceID),
		"order":           "time.asc",
	})
}

type sentimentRepository struct {
	client *supabase.Client
}

// NewSentimentRepository creates a repository over sentiment_logs.
func NewSentimentRepository(client *supabase.Client) SentimentRepository {
	return &sentimentRepository{client: client}
}

func (r *sentimentRepository) ListByDevice(ctx context.Context, deviceID string) ([]models.SentimentEvent, error) {
	return list[models.SentimentEvent](ctx, r.client, CollectionSentiments, "list_by_device", map[string]interface{}{
		"toy_mac_address": eq(deviceID),
		"order":           "time.asc",
	})
}

type interestRepository struct {
	client *supabase.Client
}

// NewInterestRepository creates a repository over interest_logs.
func NewInterestRepository(client *supabase.Client) InterestRepository {
	return &interestRepository{client: client}
}

// ListByInterest matches both columns exactly. Rows come back in insertion
// order so the first row is the oldest.
func (r *interestRepository) ListByInterest(ctx context.Context, deviceID, interest string) ([]models.InterestEvent, error) {
	return list[models.InterestEvent](ctx, r.client, CollectionInterests, "list_by_interest", map[string]interface{}{
		"toy_mac_address": eq(deviceID),
		"interest":        eq(interest),
		"order":           "id.asc",
	})
}
