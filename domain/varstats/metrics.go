package varstats

import "math"

// BiasScore is the ratio of subjective decisions to total overturns. A team
// with zero overturns scores exactly 0; the ratio is undefined there and 0 is
// the required policy value.
func BiasScore(r TeamRecord) float64 {
	if r.TotalOverturns == 0 {
		return 0
	}
	return float64(r.SubjectiveDecisionCount) / float64(r.TotalOverturns)
}

// ComplexityIndex is the weighted combination of intervention counts used as
// a proxy for how contested a team's VAR history is. Under DefaultWeights it
// is the plain sum of the two counts.
func ComplexityIndex(r TeamRecord, w Weights) float64 {
	return w.ComplexityGoal*float64(r.GoalRelatedInterventions) +
		w.ComplexitySubjective*float64(r.SubjectiveDecisionCount)
}

// LeagueMaxima holds the column maxima the comprehensive bias score
// normalizes against. Maxima of zero disable their term.
type LeagueMaxima struct {
	NetGoalImpact    float64
	AbsNetGoalImpact float64
	SubjectiveFor    float64
	Overturns        float64
}

// MaximaOf scans the season table for the normalization constants.
func MaximaOf(records []TeamRecord) LeagueMaxima {
	var m LeagueMaxima
	for _, r := range records {
		if r.NetGoalImpact > m.NetGoalImpact {
			m.NetGoalImpact = r.NetGoalImpact
		}
		if abs := math.Abs(r.NetGoalImpact); abs > m.AbsNetGoalImpact {
			m.AbsNetGoalImpact = abs
		}
		if float64(r.TotalOverturns) > m.Overturns {
			m.Overturns = float64(r.TotalOverturns)
		}
		if r.Breakdown != nil && float64(r.Breakdown.SubjectiveDecisionsFor) > m.SubjectiveFor {
			m.SubjectiveFor = float64(r.Breakdown.SubjectiveDecisionsFor)
		}
	}
	return m
}

// ComprehensiveBias is the league-normalized multi-term bias score. Each term
// divides by a league maximum; a zero maximum contributes 0 rather than NaN.
// Teams without breakdown columns contribute 0 to the goals and subjective
// terms.
func ComprehensiveBias(r TeamRecord, m LeagueMaxima, w Weights) float64 {
	var goalsBias, subjectiveBias float64
	if b := r.Breakdown; b != nil {
		goalsBias = float64((b.LeadingToGoalsFor - b.DisallowedGoalsFor) -
			(b.LeadingToGoalsAgainst - b.DisallowedGoalsAgainst))
		subjectiveBias = float64(b.SubjectiveDecisionsFor - b.SubjectiveDecisionsAgainst)
	}

	score := 0.0
	if m.NetGoalImpact != 0 {
		score += w.GoalsBias * (goalsBias / m.NetGoalImpact)
	}
	if m.SubjectiveFor != 0 {
		score += w.SubjectiveBias * (subjectiveBias / m.SubjectiveFor)
	}
	if m.AbsNetGoalImpact != 0 {
		score += w.NetImpact * (r.NetGoalImpact / m.AbsNetGoalImpact)
	}
	if m.Overturns != 0 {
		score += w.Overturns * (float64(r.TotalOverturns) / m.Overturns)
	}
	return score
}

// Compute derives the metrics for every record, preserving input order. It is
// a pure function: the same table always yields the same output, and apart
// from the league maxima used by the comprehensive score, each row's metrics
// depend only on that row.
func Compute(records []TeamRecord, w Weights) []TeamMetrics {
	maxima := MaximaOf(records)
	out := make([]TeamMetrics, len(records))
	for i, r := range records {
		out[i] = TeamMetrics{
			TeamRecord: r,
			DerivedMetrics: DerivedMetrics{
				BiasScore:         BiasScore(r),
				ComplexityIndex:   ComplexityIndex(r, w),
				ComprehensiveBias: ComprehensiveBias(r, maxima, w),
			},
		}
	}
	return out
}
