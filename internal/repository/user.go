package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/pkg/supabase"
)

type userRepository struct {
	client *supabase.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *supabase.Client) UserRepository {
	return &userRepository{client: client}
}

// GetByID returns ErrNotFound when the auth account has no profile row.
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := list[models.User](ctx, r.client, CollectionUsers, "get_by_id", map[string]interface{}{
		"uid": eq(id),
	})
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	return &users[0], nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	data := map[string]interface{}{
		"uid":        user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"created_at": createdAt,
	}

	return insertOne[models.User](ctx, r.client, CollectionUsers, "create", data)
}
