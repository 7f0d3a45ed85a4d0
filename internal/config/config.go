// Package config loads tuneshell configuration with viper. Values come from
// an optional config file, TUNE_-prefixed environment variables, and
// defaults, in that order of precedence. Credentials themselves are read
// from the environment (a .env file is loaded by the CLI before this runs);
// persisting them anywhere is deliberately unsupported.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the collaborator layer needs to talk to the
// remote service.
type Config struct {
	// APIBaseURL is the HTTP endpoint of the remote media service.
	APIBaseURL string
	// RealtimeURL is the websocket endpoint for the playback connection.
	RealtimeURL string
	// AccessToken and ClientToken authenticate remote calls.
	AccessToken string
	ClientToken string
	// HTTPTimeout bounds every remote HTTP call.
	HTTPTimeout time.Duration
	// LogLevel and LogFile configure the global logger.
	LogLevel string
	LogFile  string
}

// Load reads configuration. configFile may be empty, in which case only the
// environment and defaults apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TUNE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-base-url", "https://api.spclient.example.com")
	v.SetDefault("realtime-url", "wss://dealer.spclient.example.com/connect")
	v.SetDefault("http-timeout", "30s")
	v.SetDefault("log-level", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		APIBaseURL:  v.GetString("api-base-url"),
		RealtimeURL: v.GetString("realtime-url"),
		AccessToken: v.GetString("access-token"),
		ClientToken: v.GetString("client-token"),
		HTTPTimeout: v.GetDuration("http-timeout"),
		LogLevel:    v.GetString("log-level"),
		LogFile:     v.GetString("log-file"),
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return cfg, nil
}
