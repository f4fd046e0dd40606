// Package credstore persists the session credentials (token, username,
// user id) in the local database, sealed at rest.
package credstore

import "context"

// Well-known credential keys.
const (
	KeyAccessToken = "accessToken"
	KeyUsername    = "username"
	KeyUserID      = "user_id"
)

// Store is a small secure key-value surface. Get returns "" without error
// when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// SetAll writes every pair atomically: either all of them persist or
	// none do.
	SetAll(ctx context.Context, values map[string]string) error

	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
