package profiling

import (
	"testing"

	"varlens/domain/varstats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonFixture() []varstats.TeamMetrics {
	records := []varstats.TeamRecord{
		{Team: "Arsenal", TotalOverturns: 10, GoalRelatedInterventions: 4, SubjectiveDecisionCount: 3, NetGoalImpact: 2},
		{Team: "Chelsea", TotalOverturns: 6, GoalRelatedInterventions: 3, SubjectiveDecisionCount: 2, NetGoalImpact: 1},
		{Team: "Everton", TotalOverturns: 12, GoalRelatedInterventions: 7, SubjectiveDecisionCount: 5, NetGoalImpact: -3},
		{Team: "Fulham"},
	}
	return varstats.Compute(records, varstats.DefaultWeights())
}

func TestProfileColumns(t *testing.T) {
	profiles, err := ProfileColumns(seasonFixture())
	require.NoError(t, err)
	require.Len(t, profiles, len(ColumnNames()))

	byName := make(map[string]ColumnProfile, len(profiles))
	for _, p := range profiles {
		byName[p.Name] = p
	}

	overturns := byName["total_overturns"]
	assert.InDelta(t, 7.0, overturns.Mean, 1e-9)
	assert.Equal(t, 0.0, overturns.Min)
	assert.Equal(t, 12.0, overturns.Max)
	assert.InDelta(t, 8.0, overturns.Median, 1e-9)
	assert.LessOrEqual(t, overturns.Q25, overturns.Median)
	assert.LessOrEqual(t, overturns.Median, overturns.Q75)

	bias := byName["bias_score"]
	assert.GreaterOrEqual(t, bias.Min, 0.0)
	assert.LessOrEqual(t, bias.Max, 1.0)
}

func TestColumnExtraction(t *testing.T) {
	metrics := seasonFixture()

	impact, ok := Column(metrics, "net_goal_impact")
	require.True(t, ok)
	assert.Equal(t, []float64{2, 1, -3, 0}, impact)

	_, ok = Column(metrics, "no_such_column")
	assert.False(t, ok)
}

func TestCorrelate(t *testing.T) {
	corr := Correlate(seasonFixture())
	require.Equal(t, ColumnNames(), corr.Columns)
	require.Len(t, corr.Matrix, len(corr.Columns))

	for i := range corr.Matrix {
		require.Len(t, corr.Matrix[i], len(corr.Columns))
		assert.Equal(t, 1.0, corr.Matrix[i][i], "diagonal is 1")
		for j := range corr.Matrix[i] {
			assert.InDelta(t, corr.Matrix[j][i], corr.Matrix[i][j], 1e-9, "matrix is symmetric")
			assert.GreaterOrEqual(t, corr.Matrix[i][j], -1.0)
			assert.LessOrEqual(t, corr.Matrix[i][j], 1.0)
		}
	}

	// Counts move together in the fixture.
	overturnsIdx, goalIdx := indexOf(corr.Columns, "total_overturns"), indexOf(corr.Columns, "goal_related_interventions")
	assert.Greater(t, corr.Matrix[overturnsIdx][goalIdx], 0.8)
}

func TestCorrelateConstantColumn(t *testing.T) {
	records := []varstats.TeamRecord{
		{Team: "A", NetGoalImpact: 1},
		{Team: "B", NetGoalImpact: -1},
	}
	corr := Correlate(varstats.Compute(records, varstats.DefaultWeights()))

	overturnsIdx, impactIdx := indexOf(corr.Columns, "total_overturns"), indexOf(corr.Columns, "net_goal_impact")
	assert.Equal(t, 0.0, corr.Matrix[overturnsIdx][impactIdx], "zero-variance column must not yield NaN")
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
