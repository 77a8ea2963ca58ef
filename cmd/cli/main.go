package main

import (
	"context"
	"log"

	"github.com/certvera/certvera/internal/client/cli"
	"github.com/certvera/certvera/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("error initializing app: %s", err.Error())
	}

	app.Run(context.Background())
}
