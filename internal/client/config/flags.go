package config

import (
	"flag"
	"os"

	"github.com/avasiljevs/filesmanager/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered to the recognized flags first so other components can define
// their own.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")
	fs.StringVar(&config.TokenFile, "t", config.TokenFile, "session token cache file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
