// Command apiserver serves the season metrics as a JSON API without the
// HTML dashboard.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"varlens/domain/varstats"
	"varlens/internal/api"
	"varlens/internal/config"
	"varlens/internal/dataset"
	"varlens/internal/testkit"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var records []varstats.TeamRecord
	source := "synthetic"
	if appConfig.Data.StatsFile == "" {
		log.Printf("No stats file configured, using synthetic season data")
		records = testkit.SyntheticSeason(1)
	} else {
		records, err = dataset.NewLoader().LoadFile(appConfig.Data.StatsFile)
		if err != nil {
			log.Fatalf("Failed to load season data: %v", err)
		}
		source = appConfig.Data.StatsFile
	}

	app, err := api.NewApp(records, source)
	if err != nil {
		log.Fatalf("Failed to initialize API: %v", err)
	}

	if err := app.Start(":" + appConfig.API.Port); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
