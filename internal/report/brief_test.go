package report

import (
	"testing"

	"varlens/domain/varstats"
	"varlens/internal/profiling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	records := []varstats.TeamRecord{
		{Team: "Arsenal", TotalOverturns: 10, GoalRelatedInterventions: 4, SubjectiveDecisionCount: 3, NetGoalImpact: 2},
		{Team: "Fulham"},
		{Team: "Everton", TotalOverturns: 12, GoalRelatedInterventions: 7, SubjectiveDecisionCount: 5, NetGoalImpact: -3},
	}
	metrics := varstats.Compute(records, varstats.DefaultWeights())
	profiles, err := profiling.ProfileColumns(metrics)
	require.NoError(t, err)

	brief := Build(metrics, profiles)

	assert.Equal(t, 3, brief.TeamCount)
	assert.NotEmpty(t, brief.MostFavored)
	assert.Equal(t, []string{"Fulham"}, brief.ZeroOverturns)

	assert.Contains(t, brief.Markdown, "# VAR Season Brief")
	assert.Contains(t, brief.Markdown, "| Arsenal |")
	assert.Contains(t, brief.Markdown, "total_overturns")
	assert.Contains(t, brief.Markdown, "Fulham had no overturned decisions")
}

func TestBuildEmptyTable(t *testing.T) {
	brief := Build(nil, nil)
	assert.Equal(t, 0, brief.TeamCount)
	assert.Contains(t, brief.Markdown, "No teams loaded")
}
