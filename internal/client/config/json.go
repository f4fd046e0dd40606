package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tfernandez-dev/menumap/internal/flagx"
)

// duration lets JSON specify intervals either as strings like "10s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(data))
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so the file only overrides
// what it actually sets.
type JsonConfig struct {
	APIBaseURL      *string   `json:"api_base_url"`
	RequestTimeout  *duration `json:"request_timeout"`
	LocalDBPath     *string   `json:"local_db_path"`
	KeyFilePath     *string   `json:"key_file_path"`
	LocationGranted *bool     `json:"location_granted"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. No file means no overlay. Read or unmarshal
// errors panic; intended usage is defaults -> parseJson -> parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LocalDBPath != nil {
		cfg.LocalDBPath = *jc.LocalDBPath
	}
	if jc.KeyFilePath != nil {
		cfg.KeyFilePath = *jc.KeyFilePath
	}
	if jc.LocationGranted != nil {
		cfg.LocationGranted = *jc.LocationGranted
	}
	if jc.Latitude != nil {
		cfg.Latitude = *jc.Latitude
	}
	if jc.Longitude != nil {
		cfg.Longitude = *jc.Longitude
	}
}
