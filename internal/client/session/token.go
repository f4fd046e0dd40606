package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tfernandez-dev/menumap/internal/common"
)

// validateToken reports common.ErrTokenExpired when a stored token is a JWT
// whose exp claim has passed. The parse is unverified — the client has no
// signing key — so this is a liveness hint, not an authenticity check.
// Opaque (non-JWT) tokens and tokens without an exp claim are treated as
// still valid; the server remains the authority either way.
func validateToken(token string, now time.Time) error {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if claims.ExpiresAt.Before(now) {
		return common.ErrTokenExpired
	}
	return nil
}
