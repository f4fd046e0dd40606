package restaurants

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tfernandez-dev/menumap/internal/client/models"
	"github.com/tfernandez-dev/menumap/internal/dbx"
)

// SQLiteRepository implements Repository over the restaurant_cache table.
// The position column keeps server response order stable across reloads.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, items []models.Restaurant) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM restaurant_cache`); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
		for i := range items {
			if err := insert(ctx, tx, i, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Append(ctx context.Context, item *models.Restaurant) error {
	var next sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(position)+1 FROM restaurant_cache`).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to find append position: %w", err)
	}
	return insert(ctx, r.db, int(next.Int64), item)
}

func insert(ctx context.Context, db dbx.DBTX, position int, item *models.Restaurant) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO restaurant_cache
			(position, id_restaurant, restaurant_name, description, menu_link, location, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, position, item.ID, item.Name, item.Category, item.MenuLink, item.Address, item.Latitude, item.Longitude)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot row: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id_restaurant, restaurant_name, description, menu_link, location, latitude, longitude
		FROM restaurant_cache ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	defer rows.Close()

	result := make([]models.Restaurant, 0)
	for rows.Next() {
		var item models.Restaurant
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.MenuLink,
			&item.Address, &item.Latitude, &item.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}
	return result, nil
}
