// Package varstats holds the VAR intervention data model and the derived
// metric calculations over it. Records are created once at load time and are
// immutable afterwards; derived metrics are recomputed on demand.
package varstats

// TeamRecord is one row of the season table: the VAR intervention statistics
// for a single Premier League team.
type TeamRecord struct {
	Team                     string  `json:"team"`
	TotalOverturns           int     `json:"total_overturns"`
	GoalRelatedInterventions int     `json:"goal_related_interventions"`
	SubjectiveDecisionCount  int     `json:"subjective_decision_count"`
	NetGoalImpact            float64 `json:"net_goal_impact"`

	// Breakdown carries the extended per-direction columns when the source
	// file provides them; nil otherwise.
	Breakdown *DecisionBreakdown `json:"breakdown,omitempty"`
}

// DecisionBreakdown splits interventions by direction (for/against the team),
// as published in the extended season dataset.
type DecisionBreakdown struct {
	LeadingToGoalsFor          int     `json:"leading_to_goals_for"`
	LeadingToGoalsAgainst      int     `json:"leading_to_goals_against"`
	DisallowedGoalsFor         int     `json:"disallowed_goals_for"`
	DisallowedGoalsAgainst     int     `json:"disallowed_goals_against"`
	SubjectiveDecisionsFor     int     `json:"subjective_decisions_for"`
	SubjectiveDecisionsAgainst int     `json:"subjective_decisions_against"`
	NetSubjectiveScore         float64 `json:"net_subjective_score"`
}

// HasBreakdown reports whether the extended columns were present at load time.
func (r TeamRecord) HasBreakdown() bool {
	return r.Breakdown != nil
}

// DerivedMetrics holds the per-team scores computed from a TeamRecord.
type DerivedMetrics struct {
	BiasScore         float64 `json:"bias_score"`
	ComplexityIndex   float64 `json:"complexity_index"`
	ComprehensiveBias float64 `json:"comprehensive_bias"`
}

// TeamMetrics is the flat output record consumed by charts, the API and the
// exporters: the original row plus its derived metrics.
type TeamMetrics struct {
	TeamRecord
	DerivedMetrics
}

// Weights parameterizes the derived metric formulas. The zero value is not
// usable; call DefaultWeights for the reproducible defaults.
type Weights struct {
	// Complexity index term weights. Defaults to 1/1, i.e. the plain
	// unweighted sum of goal-related and subjective counts.
	ComplexityGoal       float64
	ComplexitySubjective float64

	// Comprehensive bias term weights, normalized against league maxima.
	GoalsBias      float64
	SubjectiveBias float64
	NetImpact      float64
	Overturns      float64
}

// DefaultWeights returns the reproducible default weighting: an unweighted
// complexity sum, and the published 0.3/0.2/0.3/0.2 comprehensive split.
func DefaultWeights() Weights {
	return Weights{
		ComplexityGoal:       1,
		ComplexitySubjective: 1,
		GoalsBias:            0.3,
		SubjectiveBias:       0.2,
		NetImpact:            0.3,
		Overturns:            0.2,
	}
}
