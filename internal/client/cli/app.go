package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/tfernandez-dev/menumap/internal/client/api"
	"github.com/tfernandez-dev/menumap/internal/client/capture"
	"github.com/tfernandez-dev/menumap/internal/client/config"
	"github.com/tfernandez-dev/menumap/internal/client/credstore"
	"github.com/tfernandez-dev/menumap/internal/client/localdb"
	"github.com/tfernandez-dev/menumap/internal/client/models"
	restrepo "github.com/tfernandez-dev/menumap/internal/client/repositories/restaurants"
	"github.com/tfernandez-dev/menumap/internal/client/restaurants"
	"github.com/tfernandez-dev/menumap/internal/client/session"
	"github.com/tfernandez-dev/menumap/internal/cryptox"
	"github.com/tfernandez-dev/menumap/internal/logging"
)

// App holds the wired-up client: the two stateful services, the capture
// flow, and the interactive reader. One instance lives for the process.
type App struct {
	config      *config.Config
	session     *session.Service
	restaurants *restaurants.Service
	flow        *capture.Flow
	locator     capture.Locator
	log         logging.Logger
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := localdb.Open(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "err", err)
		return nil, err
	}

	key, err := cryptox.LoadOrCreateKey(c.KeyFilePath)
	if err != nil {
		log.Error(ctx, "error loading store key", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	store := credstore.NewSQLiteStore(db, key)
	cache := restrepo.NewSQLiteRepository(db)

	ss := session.NewService(apiClient, store, log)
	rs := restaurants.NewService(apiClient, ss.State(), cache, log)

	locator := &capture.StaticLocator{
		Granted:  c.LocationGranted,
		Position: models.Position{Latitude: c.Latitude, Longitude: c.Longitude},
	}

	return &App{
		config:      c,
		session:     ss,
		restaurants: rs,
		flow:        capture.NewFlow(),
		locator:     locator,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the saved session and the list snapshot, then hands control
// to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}
	if err := a.restaurants.LoadCached(ctx); err != nil {
		a.log.Warn(ctx, "snapshot load failed", "err", err)
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsLoggedIn()
}
