package ui

import (
	"html/template"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/gomarkdown/markdown"

	"varlens/domain/varstats"
	"varlens/internal/charts"
)

func (s *Server) handleIndex(c *gin.Context) {
	ranked := make([]varstats.TeamMetrics, len(s.metrics))
	copy(ranked, s.metrics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ComprehensiveBias > ranked[j].ComprehensiveBias
	})

	totalOverturns := 0
	for _, m := range s.metrics {
		totalOverturns += m.TotalOverturns
	}

	data := gin.H{
		"Title":          "VAR Bias Analysis Dashboard",
		"Teams":          s.metrics,
		"Ranked":         ranked,
		"TeamCount":      len(s.metrics),
		"TotalOverturns": totalOverturns,
		"MostFavored":    s.brief.MostFavored,
		"LeastFavored":   s.brief.LeastFavored,
		"Source":         s.source,
		"LoadedAt":       s.loadedAt.Format("2006-01-02 15:04:05"),
		"DatasetID":      s.datasetID.String(),
	}
	s.renderTemplate(c, "index.html", data)
}

func (s *Server) handleTeam(c *gin.Context) {
	team, ok := s.teamByName(c.Param("team"))
	if !ok {
		c.String(http.StatusNotFound, "team not found")
		return
	}

	data := gin.H{
		"Title": team.Team + " — VAR Analysis",
		"Team":  team,
	}
	s.renderTemplate(c, "team.html", data)
}

func (s *Server) handleBrief(c *gin.Context) {
	rendered := markdown.ToHTML([]byte(s.brief.Markdown), nil, nil)
	data := gin.H{
		"Title": "VAR Season Brief",
		"Body":  templateHTML(rendered),
	}
	s.renderTemplate(c, "brief.html", data)
}

func (s *Server) handleBiasChart(c *gin.Context) {
	s.renderChart(c, charts.BiasRanking(s.metrics, s.chartConfig))
}

func (s *Server) handleImpactChart(c *gin.Context) {
	s.renderChart(c, charts.ImpactComparison(s.metrics, s.chartConfig))
}

func (s *Server) handleScatterChart(c *gin.Context) {
	s.renderChart(c, charts.BiasScatter(s.metrics, s.chartConfig))
}

func (s *Server) handleHeatmapChart(c *gin.Context) {
	s.renderChart(c, charts.MetricHeatmap(s.metrics, s.chartConfig))
}

func (s *Server) handleCorrelationChart(c *gin.Context) {
	s.renderChart(c, charts.CorrelationHeatmap(s.corr, s.chartConfig))
}

func (s *Server) handleBoxChart(c *gin.Context) {
	box, err := charts.ImpactBox(s.metrics, s.chartConfig)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to build chart: %v", err)
		return
	}
	s.renderChart(c, box)
}

func (s *Server) handleTeamCharts(c *gin.Context) {
	team, ok := s.teamByName(c.Param("team"))
	if !ok {
		c.String(http.StatusNotFound, "team not found")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	err := charts.RenderPage(c.Writer, team.Team+" — VAR charts",
		charts.SubjectiveDonut(team, s.chartConfig),
		charts.TeamBreakdown(team, s.chartConfig),
	)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render charts: %v", err)
	}
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "loaded",
		"dataset_id": s.datasetID.String(),
		"teams":      len(s.metrics),
		"source":     s.source,
		"loaded_at":  s.loadedAt,
	})
}

func (s *Server) handleTeamsJSON(c *gin.Context) {
	teams := make([]string, len(s.metrics))
	for i, m := range s.metrics {
		teams[i] = m.Team
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams, "count": len(teams)})
}

func (s *Server) handleMetricsJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics)
}

func templateHTML(b []byte) template.HTML {
	return template.HTML(b)
}

func (s *Server) renderChart(c *gin.Context, chart components.Charter) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if r, ok := chart.(charts.Renderable); ok {
		if err := charts.Render(r, c.Writer); err != nil {
			c.String(http.StatusInternalServerError, "failed to render chart: %v", err)
		}
		return
	}
	c.String(http.StatusInternalServerError, "chart is not renderable")
}
