package main

import (
	"context"
	"log"
	"os"

	"github.com/avasiljevs/filesmanager/internal/buildinfo"
	"github.com/avasiljevs/filesmanager/internal/server"
	"github.com/avasiljevs/filesmanager/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close(ctx)

	app.Run(ctx)

}
