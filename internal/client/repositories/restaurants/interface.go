// Package restaurants provides the local snapshot cache of the restaurant
// collection, so the list screens have data while offline.
package restaurants

import (
	"context"

	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// Repository stores the last known restaurant list, preserving order.
type Repository interface {
	// Replace swaps the whole snapshot for items.
	Replace(ctx context.Context, items []models.Restaurant) error

	// Append adds one record after the current snapshot contents.
	Append(ctx context.Context, r *models.Restaurant) error

	// Load returns the snapshot in stored order; empty slice when none.
	Load(ctx context.Context) ([]models.Restaurant, error)
}
