// Command report renders the season analysis to disk: one HTML file per
// chart, the markdown brief and the metrics workbook.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"varlens/adapters/excel"
	"varlens/domain/core"
	"varlens/domain/varstats"
	"varlens/internal/charts"
	"varlens/internal/config"
	"varlens/internal/dataset"
	"varlens/internal/profiling"
	"varlens/internal/report"
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
	if appConfig.Data.StatsFile == "" {
		log.Printf("No stats file configured, using synthetic season data")
		records = testkit.SyntheticSeason(1)
	} else {
		records, err = dataset.NewLoader().LoadFile(appConfig.Data.StatsFile)
		if err != nil {
			log.Fatalf("Failed to load season data: %v", err)
		}
	}

	if err := run(records, appConfig); err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}
}

func run(records []varstats.TeamRecord, appConfig *config.Config) error {
	runID := core.ReportID(core.NewID())
	metrics := varstats.Compute(records, varstats.DefaultWeights())
	profiles, err := profiling.ProfileColumns(metrics)
	if err != nil {
		return err
	}
	corr := profiling.Correlate(metrics)

	outDir := appConfig.Charts.OutputDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	chartConfig := charts.DefaultChartConfig()
	chartConfig.Theme = appConfig.Charts.Theme

	box, err := charts.ImpactBox(metrics, chartConfig)
	if err != nil {
		return err
	}

	pages := map[string]charts.Renderable{
		"bias_ranking.html":        charts.BiasRanking(metrics, chartConfig),
		"impact_comparison.html":   charts.ImpactComparison(metrics, chartConfig),
		"bias_scatter.html":        charts.BiasScatter(metrics, chartConfig),
		"metric_heatmap.html":      charts.MetricHeatmap(metrics, chartConfig),
		"correlation_heatmap.html": charts.CorrelationHeatmap(corr, chartConfig),
		"impact_box.html":          box,
	}

	var g errgroup.Group
	for name, chart := range pages {
		name, chart := name, chart
		g.Go(func() error {
			return writeChart(filepath.Join(outDir, name), chart)
		})
	}
	g.Go(func() error {
		brief := report.Build(metrics, profiles)
		return os.WriteFile(filepath.Join(outDir, "brief.md"), []byte(brief.Markdown), 0o644)
	})
	g.Go(func() error {
		workbook, err := excel.BuildWorkbook(metrics)
		if err != nil {
			return err
		}
		return workbook.SaveAs(filepath.Join(outDir, "season_metrics.xlsx"))
	})
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("[Report] run %s wrote %d charts, brief.md and season_metrics.xlsx to %s", runID, len(pages), outDir)
	return nil
}

func writeChart(path string, chart charts.Renderable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return charts.Render(chart, f)
}
