package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"varlens/domain/varstats"
)

const seasonSheet = "Season"

var exportHeaders = []interface{}{
	"team", "total_overturns", "goal_related_interventions",
	"subjective_decision_count", "net_goal_impact",
	"bias_score", "complexity_index", "comprehensive_bias",
}

// BuildWorkbook writes the flat metrics table into an xlsx workbook with a
// single Season sheet, one row per team in table order.
func BuildWorkbook(metrics []varstats.TeamMetrics) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", seasonSheet); err != nil {
		return nil, fmt.Errorf("failed to name season sheet: %w", err)
	}

	if err := f.SetSheetRow(seasonSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, m := range metrics {
		row := []interface{}{
			m.Team, m.TotalOverturns, m.GoalRelatedInterventions,
			m.SubjectiveDecisionCount, m.NetGoalImpact,
			m.BiasScore, m.ComplexityIndex, m.ComprehensiveBias,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(seasonSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	return f, nil
}
