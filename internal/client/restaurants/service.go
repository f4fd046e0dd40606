package restaurants

import (
	"context"
	"errors"
	"fmt"

	"github.com/tfernandez-dev/menumap/internal/client/api"
	"github.com/tfernandez-dev/menumap/internal/client/models"
	repo "github.com/tfernandez-dev/menumap/internal/client/repositories/restaurants"
	"github.com/tfernandez-dev/menumap/internal/common"
	"github.com/tfernandez-dev/menumap/internal/logging"
)

const genericNetworkError = "Network error"

// TokenSource yields the current bearer token, or "" when logged out.
// *session.State satisfies it.
type TokenSource interface {
	Token() string
}

// Service owns the ListState and is its only writer. The session is read
// for the bearer token; it is never written from here.
type Service struct {
	client  api.Client
	session TokenSource
	cache   repo.Repository
	state   *ListState
	log     logging.Logger
}

func NewService(client api.Client, sess TokenSource, cache repo.Repository, log logging.Logger) *Service {
	return &Service{
		client:  client,
		session: sess,
		cache:   cache,
		state:   NewListState(),
		log:     log.With("component", "restaurants"),
	}
}

// State exposes the read interface of the list.
func (s *Service) State() *ListState {
	return s.state
}

// LoadCached seeds the in-memory list from the local snapshot. Intended for
// startup, before the first focus-triggered fetch; it does not overwrite a
// list that already has content.
func (s *Service) LoadCached(ctx context.Context) error {
	if s.cache == nil || s.state.Len() > 0 {
		return nil
	}
	items, err := s.cache.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	s.state.replaceAll(items)
	s.log.Info(ctx, "seeded list from snapshot", "count", len(items))
	return nil
}

// FetchAll retrieves the full collection and replaces the list wholesale.
// Invoked on every list-screen focus. Failure leaves the previous items
// intact, sets the state error, and is not retried.
func (s *Service) FetchAll(ctx context.Context) error {
	s.state.begin()

	items, err := s.client.ListRestaurants(ctx)
	if err != nil {
		s.state.fail(fetchMessage(err))
		s.log.Warn(ctx, "fetch failed", "err", err)
		return err
	}

	s.state.replaceAll(items)
	s.snapshot(ctx, items)
	s.log.Debug(ctx, "list replaced", "count", len(items))
	return nil
}

// Add validates the draft and creates it server-side with the session's
// bearer token. Without a token it fails immediately — no network call —
// with an authorization error. On success the server-returned record (with
// its assigned id) is appended to the list.
func (s *Service) Add(ctx context.Context, draft *models.Draft) (*models.Restaurant, error) {
	s.state.begin()

	token := s.session.Token()
	if token == "" {
		s.state.fail("No token available")
		return nil, fmt.Errorf("%w: no token available", common.ErrUnauthorized)
	}

	if err := draft.Validate(); err != nil {
		s.state.fail(err.Error())
		return nil, err
	}

	created, err := s.client.AddRestaurant(ctx, token, draft)
	if err != nil {
		s.state.fail(addMessage(err))
		s.log.Warn(ctx, "add failed", "err", err)
		return nil, err
	}

	s.state.appendOne(*created)
	if s.cache != nil {
		if err := s.cache.Append(ctx, created); err != nil {
			s.log.Warn(ctx, "failed to append to snapshot", "err", err)
		}
	}
	s.log.Info(ctx, "restaurant added", "id", created.ID, "name", created.Name)
	return created, nil
}

// snapshot persists the fetched list best-effort; a cache failure never
// fails the fetch.
func (s *Service) snapshot(ctx context.Context, items []models.Restaurant) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Replace(ctx, items); err != nil {
		s.log.Warn(ctx, "failed to snapshot list", "err", err)
	}
}

func fetchMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return genericNetworkError
}

func addMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "Failed to add restaurant"
	}
	return genericNetworkError
}
