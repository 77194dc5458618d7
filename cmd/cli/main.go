package main

import (
	"context"
	"log"

	"github.com/kano-labs/kano-api-client/internal/cli"
	"github.com/kano-labs/kano-api-client/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
