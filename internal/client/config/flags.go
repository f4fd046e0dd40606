package config

import (
	"flag"
	"os"
	"time"

	"github.com/tfernandez-dev/menumap/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      base URL of the backend API
//	-t int         request timeout in seconds
//	-db string     path to the local sqlite database
//	-key string    path to the credential-store key file
//	-loc           report location permission as granted
//	-lat float     latitude the locator reports
//	-lon float     longitude the locator reports
//
// Args are filtered to the flags handled here (flagx.FilterArgs) so the
// config-file flags parsed elsewhere do not interfere. Negative coordinates
// must use the equals form (-lat=-34.6): a bare "-34.6" looks like a flag to
// the arg filter.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-db", "-key", "-loc", "-lat", "-lon"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LocalDBPath, "db", cfg.LocalDBPath, "path to the local database")
	fs.StringVar(&cfg.KeyFilePath, "key", cfg.KeyFilePath, "path to the store key file")
	fs.BoolVar(&cfg.LocationGranted, "loc", cfg.LocationGranted, "report location permission as granted")
	fs.Float64Var(&cfg.Latitude, "lat", cfg.Latitude, "latitude the locator reports")
	fs.Float64Var(&cfg.Longitude, "lon", cfg.Longitude, "longitude the locator reports")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
