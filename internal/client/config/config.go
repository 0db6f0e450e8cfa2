// Package config loads runtime configuration for the files-manager CLI.
//
// Sources and precedence: built-in defaults, then command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the files-manager server
//	-t string   path of the session token cache file
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the files-manager CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP endpoint.
//   - TokenFile: where the session token is cached between runs.
type Config struct {
	ServerEndpointAddr string
	TokenFile          string
}

// LoadDefaults populates c with sensible defaults. The token cache lands in
// the user's home directory when one is known, the current directory
// otherwise.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"

	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	c.TokenFile = filepath.Join(dir, ".filesmanager_token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
