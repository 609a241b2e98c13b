// Package profiling computes descriptive summaries over the numeric columns
// of the season table: per-column distribution markers and the Pearson
// correlation matrix behind the dashboard heatmap.
package profiling

import (
	"math"

	"varlens/domain/varstats"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ColumnProfile holds the summary statistics for one numeric column.
type ColumnProfile struct {
	Name     string  `json:"name"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	IsNormal bool    `json:"is_normal"`
	ShapiroP float64 `json:"shapiro_p"`
}

// columnExtractors lists the profiled columns in presentation order.
var columnExtractors = []struct {
	name    string
	extract func(varstats.TeamMetrics) float64
}{
	{"total_overturns", func(m varstats.TeamMetrics) float64 { return float64(m.TotalOverturns) }},
	{"goal_related_interventions", func(m varstats.TeamMetrics) float64 { return float64(m.GoalRelatedInterventions) }},
	{"subjective_decision_count", func(m varstats.TeamMetrics) float64 { return float64(m.SubjectiveDecisionCount) }},
	{"net_goal_impact", func(m varstats.TeamMetrics) float64 { return m.NetGoalImpact }},
	{"bias_score", func(m varstats.TeamMetrics) float64 { return m.BiasScore }},
	{"complexity_index", func(m varstats.TeamMetrics) float64 { return m.ComplexityIndex }},
}

// ColumnNames returns the profiled column names in presentation order.
func ColumnNames() []string {
	names := make([]string, len(columnExtractors))
	for i, c := range columnExtractors {
		names[i] = c.name
	}
	return names
}

// Column extracts one named column as a float slice, in row order.
func Column(metrics []varstats.TeamMetrics, name string) ([]float64, bool) {
	for _, c := range columnExtractors {
		if c.name == name {
			values := make([]float64, len(metrics))
			for i, m := range metrics {
				values[i] = c.extract(m)
			}
			return values, true
		}
	}
	return nil, false
}

// ProfileColumns summarizes every profiled column of the season table.
func ProfileColumns(metrics []varstats.TeamMetrics) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, 0, len(columnExtractors))
	for _, c := range columnExtractors {
		values, _ := Column(metrics, c.name)
		profile, err := profileColumn(c.name, values)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func profileColumn(name string, data []float64) (ColumnProfile, error) {
	profile := ColumnProfile{Name: name}

	mean, err := stats.Mean(data)
	if err != nil {
		return profile, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return profile, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return profile, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return profile, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return profile, err
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return profile, err
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return profile, err
	}

	profile.Mean = mean
	profile.StdDev = stdDev
	profile.Min = min
	profile.Max = max
	profile.Median = median
	profile.Q25 = q25
	profile.Q75 = q75
	profile.Skewness = calculateSkewness(data, mean, stdDev)
	profile.IsNormal, profile.ShapiroP = testNormality(data, mean, stdDev)

	return profile, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes sample kurtosis (not excess)
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n
	excessKurtosis := kurtosis - 3

	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excessKurtosis = excessKurtosis*correction + 6/(n+1)
	}

	return excessKurtosis + 3
}

// testNormality approximates a Shapiro-Wilk test from skewness and kurtosis,
// with the p-value taken from a chi-squared distribution.
func testNormality(data []float64, mean, stdDev float64) (isNormal bool, pValue float64) {
	if len(data) < 3 || stdDev == 0 {
		return false, 1.0
	}

	skewness := calculateSkewness(data, mean, stdDev)
	kurtosis := calculateKurtosis(data, mean, stdDev)

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}
