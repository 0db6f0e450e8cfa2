// Package cli is the interactive shell of the files-manager client. It
// drives the HTTP API with a small command loop and caches the session token
// between runs.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/avasiljevs/filesmanager/internal/client/api"
	"github.com/avasiljevs/filesmanager/internal/client/config"
)

// App holds the command-loop state: the API client, the cached token file
// location, and the input reader.
type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader
}

// NewApp builds the App and restores a previously cached session token, if
// any.
func NewApp(c *config.Config) (*App, error) {
	client := api.New(c.ServerEndpointAddr)

	token, err := loadToken(c.TokenFile)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	return &App{config: c, api: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

// Run starts the command loop and returns when the user exits.
func (a *App) Run(ctx context.Context) {
	if a.isLoggedIn() {
		log.Println("Restored cached session")
	}
	a.Root(ctx)
}
