// Package testkit provides synthetic season fixtures: a deterministic
// stand-in data source used by tests and by the dashboard when no stats file
// is configured.
package testkit

import (
	"math/rand"

	"varlens/domain/varstats"
)

// premierLeagueClubs is the club list used for synthetic seasons.
var premierLeagueClubs = []string{
	"Arsenal", "Aston Villa", "Bournemouth", "Brentford", "Brighton",
	"Burnley", "Chelsea", "Crystal Palace", "Everton", "Fulham",
	"Liverpool", "Luton Town", "Manchester City", "Manchester United",
	"Newcastle United", "Nottingham Forest", "Sheffield United",
	"Tottenham Hotspur", "West Ham United", "Wolves",
}

// SyntheticSeason generates a full synthetic season table from a seed. The
// same seed always yields the same table, and every record honors the data
// model invariants (goal-related and subjective counts never exceed total
// overturns).
func SyntheticSeason(seed int64) []varstats.TeamRecord {
	rng := rand.New(rand.NewSource(seed))

	records := make([]varstats.TeamRecord, 0, len(premierLeagueClubs))
	for _, club := range premierLeagueClubs {
		overturns := rng.Intn(15)
		goalRelated := 0
		subjective := 0
		if overturns > 0 {
			goalRelated = rng.Intn(overturns + 1)
			subjective = rng.Intn(overturns + 1)
		}

		leadingFor := rng.Intn(goalRelated + 1)
		leadingAgainst := goalRelated - leadingFor
		disallowedFor := rng.Intn(3)
		disallowedAgainst := rng.Intn(3)
		subjectiveFor := rng.Intn(subjective + 1)
		subjectiveAgainst := subjective - subjectiveFor

		netImpact := float64((leadingFor - disallowedFor) - (leadingAgainst - disallowedAgainst))

		records = append(records, varstats.TeamRecord{
			Team:                     club,
			TotalOverturns:           overturns,
			GoalRelatedInterventions: goalRelated,
			SubjectiveDecisionCount:  subjective,
			NetGoalImpact:            netImpact,
			Breakdown: &varstats.DecisionBreakdown{
				LeadingToGoalsFor:          leadingFor,
				LeadingToGoalsAgainst:      leadingAgainst,
				DisallowedGoalsFor:         disallowedFor,
				DisallowedGoalsAgainst:     disallowedAgainst,
				SubjectiveDecisionsFor:     subjectiveFor,
				SubjectiveDecisionsAgainst: subjectiveAgainst,
				NetSubjectiveScore:         float64(subjectiveFor - subjectiveAgainst),
			},
		})
	}

	return records
}

// SmallSeason is a fixed four-team table for worked-example tests.
func SmallSeason() []varstats.TeamRecord {
	return []varstats.TeamRecord{
		{Team: "Arsenal", TotalOverturns: 10, GoalRelatedInterventions: 4, SubjectiveDecisionCount: 3, NetGoalImpact: 2},
		{Team: "Fulham"},
		{Team: "Liverpool", TotalOverturns: 8, GoalRelatedInterventions: 5, SubjectiveDecisionCount: 2, NetGoalImpact: -1},
		{Team: "Everton", TotalOverturns: 12, GoalRelatedInterventions: 7, SubjectiveDecisionCount: 5, NetGoalImpact: -3},
	}
}
