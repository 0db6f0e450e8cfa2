package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.DatabaseURI, "mongodb://localhost:27017")
	assert.Equal(t, c.DatabaseName, "files_manager")
	assert.Equal(t, c.SessionDir, "/tmp/files_manager_sessions")
	assert.Equal(t, c.SessionTTL, 24*time.Hour)
	assert.Equal(t, c.BlobBackend, BlobBackendFS)
	assert.Equal(t, c.BlobDir, "/tmp/files_manager")
	assert.Equal(t, c.S3RootUser, "admin")
	assert.Equal(t, c.S3RootPassword, "secretpassword")
	assert.Equal(t, c.S3Bucket, "files")
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Equal(t, c.S3BaseEndpoint, "http://127.0.0.1:9000/")
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	t.Run("missing database uri", func(t *testing.T) {
		bad := c
		bad.DatabaseURI = ""
		assert.Error(t, bad.Validate())
	})

	t.Run("unknown blob backend", func(t *testing.T) {
		bad := c
		bad.BlobBackend = "ftp"
		assert.Error(t, bad.Validate())
	})

	t.Run("zero session ttl", func(t *testing.T) {
		bad := c
		bad.SessionTTL = 0
		assert.Error(t, bad.Validate())
	})

	t.Run("s3 backend requires credentials", func(t *testing.T) {
		bad := c
		bad.BlobBackend = BlobBackendS3
		bad.S3RootUser = ""
		assert.Error(t, bad.Validate())
	})
}
