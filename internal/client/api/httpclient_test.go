package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tfernandez-dev/menumap/internal/client/models"
	"github.com/tfernandez-dev/menumap/internal/logging"
)

func newClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, logging.NewTextLogger(io.Discard, slog.LevelError))
}

func TestLogin_Success_NestedUser(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["identifier"])
		require.Equal(t, "secret", body["password"])

		io.WriteString(w, `{"accessToken":"tok-1","user":{"username":"alice","user_id":7}}`)
	}))

	creds, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", creds.AccessToken)
	require.Equal(t, "alice", creds.Username)
	require.Equal(t, "7", creds.UserID)
}

func TestLogin_Success_FlatShape(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"accessToken":"tok-2","username":"bob","user_id":"42"}`)
	}))

	creds, err := c.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-2", creds.AccessToken)
	require.Equal(t, "bob", creds.Username)
	require.Equal(t, "42", creds.UserID)
}

func TestLogin_ServerRejection_CarriesMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"invalid credentials"}`)
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid credentials", apiErr.Error())
}

func TestLogin_NetworkError_WrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore
	c := NewHTTPClient(srv.URL, time.Second, logging.NewTextLogger(io.Discard, slog.LevelError))

	_, err := c.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSignup_SendsEmailField(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/signup", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.cd", body["emailAddress"])
		require.Equal(t, "alice", body["username"])
		io.WriteString(w, `{"accessToken":"tok-3","user":{"username":"alice","user_id":1}}`)
	}))

	creds, err := c.Signup(context.Background(), "a@b.cd", "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-3", creds.AccessToken)
}

func TestListRestaurants_DecodesWireNames(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/restaurants", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "listing is unauthenticated")
		io.WriteString(w, `[
			{"id_restaurant":1,"restaurant_name":"Bar Uno","description":"bar","menu_link":"https://m/1","location":"Calle 1","latitude":-34.6,"longitude":-58.4},
			{"id_restaurant":2,"restaurant_name":"Bodegón","menu_link":"https://m/2","location":"Calle 2","latitude":null,"longitude":null}
		]`)
	}))

	items, err := c.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Bar Uno", items[0].Name)
	require.Equal(t, "bar", items[0].Category)
	require.True(t, items[0].HasCoordinates())
	require.Equal(t, int64(2), items[1].ID)
	require.False(t, items[1].HasCoordinates())
}

func TestListRestaurants_MalformedBody(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"a list"`)
	}))

	_, err := c.ListRestaurants(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAddRestaurant_SendsBearerAndReturnsCreated(t *testing.T) {
	lat := -34.6
	lon := -58.4
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))

		var draft models.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		require.Equal(t, "Bar Uno", draft.Name)

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id_restaurant":42,"restaurant_name":"Bar Uno","description":"bar","menu_link":"https://m/1","location":"Calle 1","latitude":-34.6,"longitude":-58.4}`)
	}))

	created, err := c.AddRestaurant(context.Background(), "tok-9", &models.Draft{
		Name: "Bar Uno", Category: "bar", MenuLink: "https://m/1", Address: "Calle 1",
		Latitude: &lat, Longitude: &lon,
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)
}

func TestAddRestaurant_TokenRejected(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error":"token expired"}`)
	}))

	_, err := c.AddRestaurant(context.Background(), "stale", &models.Draft{Name: "X", MenuLink: "https://m/x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "token expired", apiErr.Message)
	require.False(t, errors.Is(err, ErrUnavailable))
}
