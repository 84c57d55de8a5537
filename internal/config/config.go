package config

import "github.com/caarlos0/env/v10"

// Config is the process configuration, read from ROOMSCOUT_* variables.
// Latitude/Longitude stand in for a device position; leaving them unset
// is equivalent to denying the location permission.
type Config struct {
	APIBaseURL string   `env:"ROOMSCOUT_API_URL" envDefault:"https://lereacteur-bootcamp-api.herokuapp.com/api/airbnb"`
	Latitude   *float64 `env:"ROOMSCOUT_LATITUDE"`
	Longitude  *float64 `env:"ROOMSCOUT_LONGITUDE"`
	LogFile    string   `env:"ROOMSCOUT_LOG_FILE"`
}

// Load parses the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
