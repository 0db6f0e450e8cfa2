// Package config handles configuration for the server component,
// including defaults, JSON overlay, command-line flags, and validation.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Blob-store backend selectors.
const (
	BlobBackendFS = "fs"
	BlobBackendS3 = "s3"
)

// Config holds runtime settings for the files-manager server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseURI / DatabaseName: MongoDB connection string and database.
//   - SessionDir: directory for the embedded session key-value store.
//   - SessionTTL: lifetime of issued session tokens.
//   - BlobBackend: "fs" or "s3".
//   - BlobDir: root directory for the filesystem blob backend.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	EndpointAddr   string        `validate:"required"`
	DatabaseURI    string        `validate:"required"`
	DatabaseName   string        `validate:"required"`
	SessionDir     string        `validate:"required"`
	SessionTTL     time.Duration `validate:"gt=0"`
	BlobBackend    string        `validate:"oneof=fs s3"`
	BlobDir        string        `validate:"required_if=BlobBackend fs"`
	S3RootUser     string        `validate:"required_if=BlobBackend s3"`
	S3RootPassword string        `validate:"required_if=BlobBackend s3"`
	S3Bucket       string        `validate:"required_if=BlobBackend s3"`
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "files_manager"
	c.SessionDir = "/tmp/files_manager_sessions"
	c.SessionTTL = 24 * time.Hour
	c.BlobBackend = BlobBackendFS
	c.BlobDir = "/tmp/files_manager"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "files"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// Validate checks the assembled configuration before it is used.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
