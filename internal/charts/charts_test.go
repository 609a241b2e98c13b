package charts

import (
	"bytes"
	"testing"

	"varlens/domain/varstats"
	"varlens/internal/profiling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricsFixture() []varstats.TeamMetrics {
	records := []varstats.TeamRecord{
		{
			Team: "Arsenal", TotalOverturns: 10, GoalRelatedInterventions: 4,
			SubjectiveDecisionCount: 3, NetGoalImpact: 2,
			Breakdown: &varstats.DecisionBreakdown{
				LeadingToGoalsFor: 5, LeadingToGoalsAgainst: 2,
				DisallowedGoalsFor: 1, DisallowedGoalsAgainst: 2,
				SubjectiveDecisionsFor: 6, SubjectiveDecisionsAgainst: 2,
			},
		},
		{Team: "Fulham"},
		{Team: "Liverpool", TotalOverturns: 8, GoalRelatedInterventions: 5, SubjectiveDecisionCount: 2, NetGoalImpact: -1},
	}
	return varstats.Compute(records, varstats.DefaultWeights())
}

func renderToString(t *testing.T, chart Renderable) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(chart, &buf))
	return buf.String()
}

func TestBiasRanking(t *testing.T) {
	html := renderToString(t, BiasRanking(metricsFixture(), DefaultChartConfig()))
	assert.Contains(t, html, "VAR Bias Scores Across Teams")
	assert.Contains(t, html, "Arsenal")
	assert.Contains(t, html, "Fulham")
}

func TestBiasRankingDoesNotMutateInput(t *testing.T) {
	metrics := metricsFixture()
	BiasRanking(metrics, DefaultChartConfig())
	assert.Equal(t, "Arsenal", metrics[0].Team, "ranking must sort a copy")
}

func TestImpactComparison(t *testing.T) {
	html := renderToString(t, ImpactComparison(metricsFixture(), DefaultChartConfig()))
	assert.Contains(t, html, "Net Goal Impact by Team")
	assert.Contains(t, html, "Liverpool")
}

func TestBiasScatter(t *testing.T) {
	html := renderToString(t, BiasScatter(metricsFixture(), DefaultChartConfig()))
	assert.Contains(t, html, "Bias Score vs Net Goal Impact")
	assert.Contains(t, html, "0.3")
}

func TestMetricHeatmap(t *testing.T) {
	html := renderToString(t, MetricHeatmap(metricsFixture(), DefaultChartConfig()))
	assert.Contains(t, html, "Team vs Overturn Frequency")
	assert.Contains(t, html, "total_overturns")
}

func TestCorrelationHeatmap(t *testing.T) {
	corr := profiling.Correlate(metricsFixture())
	html := renderToString(t, CorrelationHeatmap(corr, DefaultChartConfig()))
	assert.Contains(t, html, "Correlation of VAR Metrics")
	assert.Contains(t, html, "net_goal_impact")
}

func TestImpactBox(t *testing.T) {
	box, err := ImpactBox(metricsFixture(), DefaultChartConfig())
	require.NoError(t, err)
	html := renderToString(t, box)
	assert.Contains(t, html, "Distribution of Net Goal Impact")
}

func TestSubjectiveDonut(t *testing.T) {
	metrics := metricsFixture()

	html := renderToString(t, SubjectiveDonut(metrics[0], DefaultChartConfig()))
	assert.Contains(t, html, "Subjective Decisions for Arsenal")

	// Teams without breakdown render zero slices rather than failing.
	html = renderToString(t, SubjectiveDonut(metrics[1], DefaultChartConfig()))
	assert.Contains(t, html, "Subjective Decisions for Fulham")
}

func TestTeamBreakdown(t *testing.T) {
	html := renderToString(t, TeamBreakdown(metricsFixture()[0], DefaultChartConfig()))
	assert.Contains(t, html, "VAR Metrics Breakdown for Arsenal")
	assert.Contains(t, html, "Leading to goals for")
}

func TestRenderPage(t *testing.T) {
	metrics := metricsFixture()
	var buf bytes.Buffer
	err := RenderPage(&buf, "Season report",
		BiasRanking(metrics, DefaultChartConfig()),
		ImpactComparison(metrics, DefaultChartConfig()),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Season report")
}
