package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tfernandez-dev/menumap/internal/common"
	"github.com/tfernandez-dev/menumap/internal/cryptox"
	"github.com/tfernandez-dev/menumap/internal/dbx"
)

// SQLiteStore keeps credentials in the credentials table, each value sealed
// with the store key before it touches disk.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

func NewSQLiteStore(db *sql.DB, key []byte) *SQLiteStore {
	return &SQLiteStore{db: db, key: key}
}

// Get reads a credential; an absent key reads as "" so callers never need
// to distinguish missing from empty.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.lookup(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	return value, err
}

// lookup unseals the stored value for key, reporting common.ErrNotFound for
// an absent row.
func (s *SQLiteStore) lookup(ctx context.Context, key string) (string, error) {
	var value, nonce []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value, nonce FROM credentials WHERE key = ?`, key).Scan(&value, &nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("credential[%s]: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential[%s]: %w", key, err)
	}

	plaintext, err := cryptox.Open(value, nonce, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to unseal credential[%s]: %w", key, err)
	}
	return string(plaintext), nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key, value string) error {
	sealed, nonce, err := cryptox.Seal([]byte(value), s.key)
	if err != nil {
		return fmt.Errorf("failed to seal credential[%s]: %w", key, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, nonce = excluded.nonce
	`, key, sealed, nonce)
	if err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", key, err)
	}
	return nil
}

// SetAll writes all pairs in a single transaction so a login never leaves a
// token behind without its identity fields (or vice versa).
func (s *SQLiteStore) SetAll(ctx context.Context, values map[string]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range values {
			if err := s.set(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credential[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
