package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/waylo/companion/backend/pkg/supabase"
)

// list runs a PostgREST select and decodes the rows. Any failure, including
// one bad row, fails the whole fetch.
func list[T any](ctx context.Context, client *supabase.Client, collection, op string, query map[string]interface{}) ([]T, error) {
	body, err := client.Query(ctx, collection, query)
	if err != nil {
		return nil, sourceError(collection, op, err)
	}

	rows := []T{}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, sourceError(collection, op, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	return rows, nil
}

// insertOne posts data and returns the single representation row.
func insertOne[T any](ctx context.Context, client *supabase.Client, collection, op string, data interface{}) (*T, error) {
	body, err := client.Insert(ctx, collection, data)
	if err != nil {
		if supabase.IsStatus(err, 409) {
			return nil, sourceError(collection, op, fmt.Errorf("%w: %v", ErrDuplicate, err))
		}
		return nil, sourceError(collection, op, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, sourceError(collection, op, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	if len(rows) == 0 {
		return nil, sourceError(collection, op, fmt.Errorf("no row returned"))
	}
	return &rows[0], nil
}

func eq(v string) string {
	return fmt.Sprintf("eq.%s", v)
}
