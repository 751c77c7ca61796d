package main

import (
	"context"
	"log"
	"os"

	"github.com/aimcal/birthdaykeeper/internal/buildinfo"
	"github.com/aimcal/birthdaykeeper/internal/cli"
	"github.com/aimcal/birthdaykeeper/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
