package capture

import (
	"context"

	"github.com/tfernandez-dev/menumap/internal/client/models"
	"github.com/tfernandez-dev/menumap/internal/common"
)

// Locator abstracts the device geolocation provider.
type Locator interface {
	// RequestPermission returns common.ErrPermissionDenied when the user
	// refused location access.
	RequestPermission(ctx context.Context) error

	// Current reads one position sample.
	Current(ctx context.Context) (models.Position, error)
}

// StaticLocator is the CLI stand-in for a hardware provider: a fixed
// position from configuration and a permission switch. A terminal has no
// GPS, so the "device position" is whatever the user configured.
type StaticLocator struct {
	Granted  bool
	Position models.Position
}

func (l *StaticLocator) RequestPermission(ctx context.Context) error {
	if !l.Granted {
		return common.ErrPermissionDenied
	}
	return nil
}

func (l *StaticLocator) Current(ctx context.Context) (models.Position, error) {
	return l.Position, nil
}
