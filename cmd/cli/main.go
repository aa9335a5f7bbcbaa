package main

import (
	"context"
	"log"

	"github.com/listafacil/listafacil/internal/cli"
	"github.com/listafacil/listafacil/internal/config"
	"github.com/listafacil/listafacil/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
