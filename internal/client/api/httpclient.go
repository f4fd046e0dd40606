package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tfernandez-dev/menumap/internal/client/models"
	"github.com/tfernandez-dev/menumap/internal/logging"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type signupRequest struct {
	EmailAddress string `json:"emailAddress"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// authResponse tolerates both response shapes the backend has shipped:
// identity nested under "user" or flattened at the top level, with the
// numeric id sometimes serialized as a JSON number.
type authResponse struct {
	AccessToken string `json:"accessToken"`
	User        struct {
		Username string      `json:"username"`
		UserID   json.Number `json:"user_id"`
		ID       json.Number `json:"id"`
	} `json:"user"`
	Username string      `json:"username"`
	UserID   json.Number `json:"user_id"`
}

func (r *authResponse) credentials() *Credentials {
	c := &Credentials{AccessToken: r.AccessToken}

	c.Username = r.User.Username
	if c.Username == "" {
		c.Username = r.Username
	}

	for _, id := range []json.Number{r.User.UserID, r.User.ID, r.UserID} {
		if id.String() != "" {
			c.UserID = id.String()
			break
		}
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*Credentials, error) {
	var resp authResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", "", loginRequest{Identifier: identifier, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.credentials(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, username, password string) (*Credentials, error) {
	var resp authResponse
	req := signupRequest{EmailAddress: email, Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/signup", "", req, &resp); err != nil {
		return nil, err
	}
	return resp.credentials(), nil
}

func (c *HTTPClient) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var items []models.Restaurant
	if err := c.doJSON(ctx, http.MethodGet, "/restaurants", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) AddRestaurant(ctx context.Context, token string, draft *models.Draft) (*models.Restaurant, error) {
	var created models.Restaurant
	if err := c.doJSON(ctx, http.MethodPost, "/restaurants", token, draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// doJSON performs one request/response round trip. Transport failures wrap
// ErrUnavailable; non-2xx responses become *APIError carrying the backend's
// "error" field when present.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &e)
		c.log.Warn(ctx, "server rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "message", e.Error)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return nil
}
