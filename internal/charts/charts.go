// Package charts builds the interactive dashboard charts from the flat
// metrics table using go-echarts. Constructors are pure; rendering writes
// self-contained HTML to a writer.
package charts

import (
	"fmt"
	"io"
	"math"
	"sort"

	"varlens/domain/varstats"
	"varlens/internal/profiling"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"
)

// ChartConfig holds shared chart presentation settings.
type ChartConfig struct {
	Width      string
	Height     string
	Theme      string
	ShowLegend bool
	Colors     []string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:      "900px",
		Height:     "500px",
		Theme:      "light",
		ShowLegend: true,
		Colors:     []string{"#3498db", "#2ecc71", "#e74c3c", "#f39c12", "#9b59b6", "#1abc9c", "#34495e"},
	}
}

func (c ChartConfig) baseOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  c.Width,
			Height: c.Height,
			Theme:  c.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(c.ShowLegend),
		}),
	}
}

// BiasRanking is the league-wide bias bar chart, sorted by comprehensive
// bias score, highest first.
func BiasRanking(metrics []varstats.TeamMetrics, config ChartConfig) *charts.Bar {
	ranked := make([]varstats.TeamMetrics, len(metrics))
	copy(ranked, metrics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ComprehensiveBias > ranked[j].ComprehensiveBias
	})

	teams := make([]string, len(ranked))
	data := make([]opts.BarData, len(ranked))
	for i, m := range ranked {
		teams[i] = m.Team
		data[i] = opts.BarData{Value: m.ComprehensiveBias}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(
		config.baseOptions("VAR Bias Scores Across Teams", "comprehensive bias score, league-normalized"),
		charts.WithColorsOpts(opts.Colors{config.Colors[0]}),
	)...)
	bar.SetXAxis(teams).AddSeries("Bias score", data)

	return bar
}

// ImpactComparison is the net-goal-impact bar chart across teams.
func ImpactComparison(metrics []varstats.TeamMetrics, config ChartConfig) *charts.Bar {
	teams := make([]string, len(metrics))
	data := make([]opts.BarData, len(metrics))
	for i, m := range metrics {
		teams[i] = m.Team
		data[i] = opts.BarData{Value: m.NetGoalImpact}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(
		config.baseOptions("Net Goal Impact by Team", "goals gained or lost through VAR decisions"),
		charts.WithColorsOpts(opts.Colors{config.Colors[1]}),
	)...)
	bar.SetXAxis(teams).AddSeries("Net goal impact", data)

	return bar
}

// BiasScatter plots bias score against net goal impact, one point per team.
func BiasScatter(metrics []varstats.TeamMetrics, config ChartConfig) *charts.Scatter {
	data := make([]opts.ScatterData, len(metrics))
	for i, m := range metrics {
		data[i] = opts.ScatterData{
			Name:       m.Team,
			Value:      []interface{}{m.BiasScore, m.NetGoalImpact},
			Symbol:     "circle",
			SymbolSize: 14,
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(append(
		config.baseOptions("Bias Score vs Net Goal Impact", ""),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Bias score"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Net goal impact"}),
		charts.WithColorsOpts(opts.Colors{config.Colors[2]}),
	)...)
	scatter.AddSeries("Teams", data, charts.WithLabelOpts(opts.Label{
		Show:      opts.Bool(true),
		Formatter: "{b}",
		Position:  "top",
	}))

	return scatter
}

// MetricHeatmap shows each team against each raw metric, min-max normalized
// per column so overturn frequency and impact share one color scale.
func MetricHeatmap(metrics []varstats.TeamMetrics, config ChartConfig) *charts.HeatMap {
	columns := []string{"total_overturns", "goal_related_interventions", "subjective_decision_count", "net_goal_impact"}

	teams := make([]string, len(metrics))
	for i, m := range metrics {
		teams[i] = m.Team
	}

	var data []opts.HeatMapData
	for j, name := range columns {
		values, _ := profiling.Column(metrics, name)
		lo, hi := minMax(values)
		for i, v := range values {
			normalized := 0.0
			if hi > lo {
				normalized = (v - lo) / (hi - lo)
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, round2(normalized)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(append(
		config.baseOptions("Team vs Overturn Frequency", "column-normalized intervention metrics"),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      teams,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      columns,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: []string{"#F4F6F9", "#3498db", "#e74c3c"}},
		}),
	)...)
	hm.AddSeries("metrics", data)

	return hm
}

// CorrelationHeatmap renders the Pearson correlation matrix of the VAR
// metric columns.
func CorrelationHeatmap(corr profiling.CorrelationMatrix, config ChartConfig) *charts.HeatMap {
	var data []opts.HeatMapData
	for i := range corr.Matrix {
		for j, v := range corr.Matrix[i] {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, round2(v)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(append(
		config.baseOptions("Correlation of VAR Metrics", "Pearson r"),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      corr.Columns,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      corr.Columns,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#ffffbf", "#a50026"}},
		}),
	)...)
	hm.AddSeries("correlation", data)

	return hm
}

// ImpactBox is the league-wide distribution of net goal impact as a single
// five-number box.
func ImpactBox(metrics []varstats.TeamMetrics, config ChartConfig) (*charts.BoxPlot, error) {
	values, _ := profiling.Column(metrics, "net_goal_impact")

	min, err := stats.Min(values)
	if err != nil {
		return nil, fmt.Errorf("net goal impact summary: %w", err)
	}
	q25, err := stats.Percentile(values, 25)
	if err != nil {
		return nil, fmt.Errorf("net goal impact summary: %w", err)
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, fmt.Errorf("net goal impact summary: %w", err)
	}
	q75, err := stats.Percentile(values, 75)
	if err != nil {
		return nil, fmt.Errorf("net goal impact summary: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, fmt.Errorf("net goal impact summary: %w", err)
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(append(
		config.baseOptions("Distribution of Net Goal Impact", "league-wide five-number summary"),
		charts.WithColorsOpts(opts.Colors{config.Colors[0]}),
	)...)
	box.SetXAxis([]string{"net_goal_impact"}).AddSeries("League", []opts.BoxPlotData{
		{Value: []float64{min, q25, median, q75, max}},
	})

	return box, nil
}

// SubjectiveDonut shows one team's subjective decisions for vs against.
// Requires breakdown columns; without them both slices are zero.
func SubjectiveDonut(team varstats.TeamMetrics, config ChartConfig) *charts.Pie {
	var forCount, againstCount int
	if team.Breakdown != nil {
		forCount = team.Breakdown.SubjectiveDecisionsFor
		againstCount = team.Breakdown.SubjectiveDecisionsAgainst
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(config.baseOptions(
		fmt.Sprintf("Subjective Decisions for %s", team.Team), "")...)
	pie.AddSeries("Subjective decisions", []opts.PieData{
		{Name: "For", Value: forCount},
		{Name: "Against", Value: againstCount},
	}).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)

	return pie
}

// TeamBreakdown is one team's goal-decision breakdown bar chart.
func TeamBreakdown(team varstats.TeamMetrics, config ChartConfig) *charts.Bar {
	categories := []string{"Leading to goals for", "Leading to goals against", "Disallowed goals for", "Disallowed goals against"}

	var values [4]int
	if b := team.Breakdown; b != nil {
		values = [4]int{b.LeadingToGoalsFor, b.LeadingToGoalsAgainst, b.DisallowedGoalsFor, b.DisallowedGoalsAgainst}
	}

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(
		config.baseOptions(fmt.Sprintf("VAR Metrics Breakdown for %s", team.Team), ""),
		charts.WithColorsOpts(opts.Colors{config.Colors[1]}),
	)...)
	bar.SetXAxis(categories).AddSeries("Decisions", data)

	return bar
}

// Renderable is satisfied by every go-echarts chart.
type Renderable interface {
	Render(w io.Writer) error
}

// Render writes a single chart as a standalone HTML document.
func Render(chart Renderable, w io.Writer) error {
	return chart.Render(w)
}

// RenderPage composes several charts onto one scrolling page.
func RenderPage(w io.Writer, title string, chartList ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(chartList...)
	return page.Render(w)
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
