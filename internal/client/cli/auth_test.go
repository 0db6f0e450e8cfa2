package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/filesmanager/internal/client/api"
	"github.com/avasiljevs/filesmanager/internal/client/config"
)

// stubInput redirects the interactive input seams for the duration of a test.
func stubInput(t *testing.T, text, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return text, nil
	}
	getPassword = func(w io.Writer) (string, error) {
		return password, nil
	}
}

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()

	cfg := &config.Config{
		ServerEndpointAddr: serverURL,
		TokenFile:          filepath.Join(t.TempDir(), "token"),
	}
	app, err := NewApp(cfg)
	require.NoError(t, err)
	app.reader = bufio.NewReader(strings.NewReader(""))
	return app
}

func TestLoginCachesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/connect", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	stubInput(t, "bob@dylan.com", "toto1234!")

	app.Login(context.Background())

	assert.True(t, app.isLoggedIn())

	cached, err := loadToken(app.config.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", cached)
}

func TestLoginFailureLeavesNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	stubInput(t, "bob@dylan.com", "wrong")

	app.Login(context.Background())

	assert.False(t, app.isLoggedIn())

	cached, err := loadToken(app.config.TokenFile)
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestLogoutClearsCachedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	app.api.SetToken("tok-1")
	require.NoError(t, saveToken(app.config.TokenFile, "tok-1"))

	app.Logout(context.Background())

	assert.False(t, app.isLoggedIn())

	cached, err := loadToken(app.config.TokenFile)
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestNewApp_RestoresCachedToken(t *testing.T) {
	cfg := &config.Config{
		ServerEndpointAddr: "http://127.0.0.1:8080",
		TokenFile:          filepath.Join(t.TempDir(), "token"),
	}
	require.NoError(t, saveToken(cfg.TokenFile, "tok-1"))

	app, err := NewApp(cfg)
	require.NoError(t, err)
	assert.True(t, app.isLoggedIn())
}

func TestWhoAmI_WithCachedSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "tok-1", r.Header.Get("X-Token"))
		json.NewEncoder(w).Encode(api.User{ID: "abc123", Email: "bob@dylan.com"})
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	app.api.SetToken("tok-1")

	app.WhoAmI(context.Background())
}
