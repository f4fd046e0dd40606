package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tfernandez-dev/menumap/internal/client/api"
	"github.com/tfernandez-dev/menumap/internal/client/credstore"
	"github.com/tfernandez-dev/menumap/internal/common"
	"github.com/tfernandez-dev/menumap/internal/logging"
)

// genericNetworkError is shown when a request never produced a well-formed
// response; server rejections surface their own message verbatim instead.
const genericNetworkError = "Network error"

// Service owns the session State and is its only writer.
type Service struct {
	client api.Client
	store  credstore.Store
	state  *State
	log    logging.Logger
	now    func() time.Time
}

func NewService(client api.Client, store credstore.Store, log logging.Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		state:  NewState(),
		log:    log.With("component", "session"),
		now:    time.Now,
	}
}

// State exposes the read interface of the session.
func (s *Service) State() *State {
	return s.state
}

// Bootstrap populates the session from the credential store. No network call
// is made: the session is logged in iff a usable token was found. A stored
// JWT whose expiry has passed is discarded along with the rest of the
// credentials. Runs once per app start.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.state.begin()

	token, err := s.store.Get(ctx, credstore.KeyAccessToken)
	if err != nil {
		s.state.fail("")
		return fmt.Errorf("reading stored token: %w", err)
	}
	username, err := s.store.Get(ctx, credstore.KeyUsername)
	if err != nil {
		s.state.fail("")
		return fmt.Errorf("reading stored username: %w", err)
	}
	userID, err := s.store.Get(ctx, credstore.KeyUserID)
	if err != nil {
		s.state.fail("")
		return fmt.Errorf("reading stored user id: %w", err)
	}

	if token != "" && errors.Is(validateToken(token, s.now()), common.ErrTokenExpired) {
		s.log.Info(ctx, "stored token expired, clearing credentials")
		if err := s.store.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to clear expired credentials", "err", err)
		}
		s.state.clear()
		return nil
	}

	s.state.setCredentials(token, username, userID)
	s.log.Info(ctx, "session bootstrapped", "logged_in", token != "")
	return nil
}

// Login authenticates against the server. On success the credentials are
// persisted (atomically) before the in-memory session flips to logged in.
// On failure the session token is left untouched and the state error carries
// the server's message, or a generic network message.
func (s *Service) Login(ctx context.Context, identifier string, password []byte) error {
	s.state.begin()

	creds, err := s.client.Login(ctx, identifier, string(password))
	if err != nil {
		msg := userMessage(err)
		s.state.fail(msg)
		s.log.Warn(ctx, "login failed", "err", err)
		return err
	}

	return s.persistAndApply(ctx, creds)
}

// Signup provisions a new account; the contract shape is identical to Login.
func (s *Service) Signup(ctx context.Context, email, username string, password []byte) error {
	s.state.begin()

	creds, err := s.client.Signup(ctx, email, username, string(password))
	if err != nil {
		s.state.fail(userMessage(err))
		s.log.Warn(ctx, "signup failed", "err", err)
		return err
	}

	return s.persistAndApply(ctx, creds)
}

// persistAndApply writes the credentials to the store first, then mirrors
// them into the session, so the session never reports logged-in without a
// durable token already stored.
func (s *Service) persistAndApply(ctx context.Context, creds *api.Credentials) error {
	err := s.store.SetAll(ctx, map[string]string{
		credstore.KeyAccessToken: creds.AccessToken,
		credstore.KeyUsername:    creds.Username,
		credstore.KeyUserID:      creds.UserID,
	})
	if err != nil {
		s.state.fail("Failed to save credentials")
		return fmt.Errorf("persisting credentials: %w", err)
	}

	s.state.setCredentials(creds.AccessToken, creds.Username, creds.UserID)
	s.log.Info(ctx, "logged in", "username", creds.Username)
	return nil
}

// Logout clears the credential store, then the session. It never involves
// the network and the session always ends up logged out locally, even when
// the store cleanup reports an error.
func (s *Service) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)
	s.state.clear()
	if err != nil {
		s.log.Warn(ctx, "failed to clear credential store", "err", err)
		return fmt.Errorf("clearing credentials: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// userMessage maps an operation error to the string stored in the state:
// server rejections verbatim, transport failures as a generic message.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if errors.Is(err, api.ErrUnavailable) {
		return genericNetworkError
	}
	return err.Error()
}
