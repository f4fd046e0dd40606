// Package api defines the remote restaurant API consumed by the client and
// its HTTP implementation. The backend itself is an external collaborator;
// only its request/response contract lives here.
package api

import (
	"context"

	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// Credentials is the identity material returned by login/signup.
type Credentials struct {
	AccessToken string
	Username    string
	UserID      string
}

// Client is the transport-facing surface the operations layer depends on.
type Client interface {
	// Login exchanges identifier+password for credentials.
	Login(ctx context.Context, identifier, password string) (*Credentials, error)

	// Signup provisions a new account and returns its credentials.
	Signup(ctx context.Context, email, username, password string) (*Credentials, error)

	// ListRestaurants fetches the full collection in server order.
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)

	// AddRestaurant creates a restaurant on behalf of the bearer of token and
	// returns the record with its server-assigned id.
	AddRestaurant(ctx context.Context, token string, draft *models.Draft) (*models.Restaurant, error)
}
