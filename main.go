package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"varlens/domain/varstats"
	"varlens/internal/charts"
	"varlens/internal/config"
	"varlens/internal/dataset"
	"varlens/internal/testkit"
	"varlens/ui"
)

// loadSeason resolves the data source: the configured stats file when one is
// set, a seeded synthetic season otherwise.
func loadSeason(appConfig *config.Config) ([]varstats.TeamRecord, string) {
	if appConfig.Data.StatsFile == "" {
		log.Printf("No stats file configured, using synthetic season data")
		return testkit.SyntheticSeason(1), "synthetic"
	}

	log.Printf("Using stats file: %s", appConfig.Data.StatsFile)
	records, err := dataset.NewLoader().LoadFile(appConfig.Data.StatsFile)
	if err != nil {
		log.Fatalf("Failed to load season data: %v", err)
	}
	return records, appConfig.Data.StatsFile
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	records, source := loadSeason(appConfig)

	chartConfig := charts.DefaultChartConfig()
	chartConfig.Theme = appConfig.Charts.Theme

	gin.SetMode(appConfig.Server.GinMode)
	server := ui.NewServer()
	if err := server.Initialize(records, source, chartConfig); err != nil {
		log.Fatalf("Failed to initialize dashboard: %v", err)
	}

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
