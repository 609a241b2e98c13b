// Package ui is the gin-served HTML dashboard over the computed season
// table: overview page, per-team tab, chart pages, the markdown brief and
// the xlsx export.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"varlens/domain/core"
	"varlens/domain/varstats"
	"varlens/internal/charts"
	"varlens/internal/profiling"
	"varlens/internal/report"
)

//go:embed templates/*
var embeddedFiles embed.FS

// Server represents the web server for the VAR dashboard
type Server struct {
	router    *gin.Engine
	templates *template.Template

	// Season data, computed once at initialization. Records are immutable;
	// everything below derives from them.
	metrics   []varstats.TeamMetrics
	profiles  []profiling.ColumnProfile
	corr      profiling.CorrelationMatrix
	brief     report.Brief
	datasetID core.DatasetID
	source    string
	loadedAt  time.Time

	chartConfig charts.ChartConfig
}

// NewServer creates a new web server instance
func NewServer() *Server {
	return &Server{
		router:      gin.Default(),
		chartConfig: charts.DefaultChartConfig(),
	}
}

// Initialize computes the derived tables and wires templates and routes.
// source names the data origin for display ("synthetic" or the file path).
func (s *Server) Initialize(records []varstats.TeamRecord, source string, chartConfig charts.ChartConfig) error {
	s.metrics = varstats.Compute(records, varstats.DefaultWeights())
	profiles, err := profiling.ProfileColumns(s.metrics)
	if err != nil {
		return fmt.Errorf("failed to profile season table: %w", err)
	}
	s.profiles = profiles
	s.corr = profiling.Correlate(s.metrics)
	s.brief = report.Build(s.metrics, s.profiles)
	s.datasetID = core.DatasetID(core.NewID())
	s.source = source
	s.loadedAt = time.Now()
	s.chartConfig = chartConfig

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"f2":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	s.setupRoutes()

	log.Printf("[Server] dashboard initialized (dataset=%s, %d teams, source=%s)",
		s.datasetID, len(s.metrics), s.source)
	return nil
}

// setupRoutes wires the dashboard endpoints
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/teams/:team", s.handleTeam)
	s.router.GET("/brief", s.handleBrief)
	s.router.GET("/export.xlsx", s.handleExport)

	chartGroup := s.router.Group("/charts")
	{
		chartGroup.GET("/bias", s.handleBiasChart)
		chartGroup.GET("/impact", s.handleImpactChart)
		chartGroup.GET("/scatter", s.handleScatterChart)
		chartGroup.GET("/heatmap", s.handleHeatmapChart)
		chartGroup.GET("/correlation", s.handleCorrelationChart)
		chartGroup.GET("/box", s.handleBoxChart)
		chartGroup.GET("/team/:team", s.handleTeamCharts)
	}

	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/status", s.handleStatus)
		apiGroup.GET("/teams", s.handleTeamsJSON)
		apiGroup.GET("/metrics", s.handleMetricsJSON)
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the dashboard server
func (s *Server) Start(addr string) error {
	log.Printf("[Server] dashboard listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("[Server] template %s failed: %v", name, err)
		c.String(500, "template rendering failed")
	}
}

// teamByName finds a team row case-insensitively.
func (s *Server) teamByName(name string) (varstats.TeamMetrics, bool) {
	for _, m := range s.metrics {
		if strings.EqualFold(m.Team, name) {
			return m, true
		}
	}
	return varstats.TeamMetrics{}, false
}
