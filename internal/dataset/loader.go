// Package dataset loads the per-team VAR season table from delimited files
// into typed records, enforcing the load contract: required columns present,
// numeric columns numeric, file order preserved, no partial tables.
package dataset

import (
	"log"
	"strconv"
	"strings"

	"varlens/adapters/excel"
	"varlens/domain/varstats"
	apperrors "varlens/internal/errors"
)

// Canonical column keys after header normalization.
const (
	colTeam                     = "team"
	colTotalOverturns           = "total_overturns"
	colGoalRelatedInterventions = "goal_related_interventions"
	colSubjectiveDecisionCount  = "subjective_decision_count"
	colNetGoalImpact            = "net_goal_impact"

	colLeadingToGoalsFor          = "leading_to_goals_for"
	colLeadingToGoalsAgainst      = "leading_to_goals_against"
	colDisallowedGoalsFor         = "disallowed_goals_for"
	colDisallowedGoalsAgainst     = "disallowed_goals_against"
	colSubjectiveDecisionsFor     = "subjective_decisions_for"
	colSubjectiveDecisionsAgainst = "subjective_decisions_against"
	colNetSubjectiveScore         = "net_subjective_score"
)

var requiredColumns = []string{
	colTeam,
	colTotalOverturns,
	colGoalRelatedInterventions,
	colSubjectiveDecisionCount,
	colNetGoalImpact,
}

var breakdownColumns = []string{
	colLeadingToGoalsFor,
	colLeadingToGoalsAgainst,
	colDisallowedGoalsFor,
	colDisallowedGoalsAgainst,
	colSubjectiveDecisionsFor,
	colSubjectiveDecisionsAgainst,
	colNetSubjectiveScore,
}

// headerAliases accepts the published dataset's header spellings alongside
// the canonical snake_case names.
var headerAliases = map[string]string{
	"overturns":      colTotalOverturns,
	"net_goal_score": colNetGoalImpact,
}

// Loader reads stats files into immutable TeamRecord sequences.
type Loader struct{}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile reads a .csv or .xlsx season file. File-not-found and permission
// errors pass through from the reader untouched.
func (l *Loader) LoadFile(path string) ([]varstats.TeamRecord, error) {
	reader := excel.NewDataReader(path)
	table, err := reader.ReadData()
	if err != nil {
		return nil, err
	}
	return l.Parse(table)
}

// Parse maps a raw table onto TeamRecords, one per data row, preserving row
// order. The load is all-or-nothing: the first malformed record or type
// mismatch aborts with no partial result.
func (l *Loader) Parse(table *excel.TableData) ([]varstats.TeamRecord, error) {
	columns := l.resolveColumns(table.Headers)
	hasBreakdown := l.hasAnyBreakdownColumn(columns)

	records := make([]varstats.TeamRecord, 0, len(table.Rows))
	for i, raw := range table.Rows {
		record, err := l.parseRow(i, raw, columns, hasBreakdown)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	log.Printf("[Loader] season table loaded (%d teams, breakdown=%v)", len(records), hasBreakdown)
	return records, nil
}

// resolveColumns maps canonical column keys to the source header names.
func (l *Loader) resolveColumns(headers []string) map[string]string {
	columns := make(map[string]string, len(headers))
	for _, header := range headers {
		key := normalizeHeader(header)
		if alias, ok := headerAliases[key]; ok {
			key = alias
		}
		if _, taken := columns[key]; !taken {
			columns[key] = header
		}
	}
	return columns
}

func (l *Loader) hasAnyBreakdownColumn(columns map[string]string) bool {
	for _, key := range breakdownColumns {
		if _, ok := columns[key]; ok {
			return true
		}
	}
	return false
}

func (l *Loader) parseRow(row int, raw excel.RawRowData, columns map[string]string, hasBreakdown bool) (varstats.TeamRecord, error) {
	var record varstats.TeamRecord

	team, err := l.requiredCell(row, raw, columns, colTeam)
	if err != nil {
		return record, err
	}
	record.Team = team

	overturns, err := l.requiredInt(row, raw, columns, colTotalOverturns)
	if err != nil {
		return record, err
	}
	goalRelated, err := l.requiredInt(row, raw, columns, colGoalRelatedInterventions)
	if err != nil {
		return record, err
	}
	subjective, err := l.requiredInt(row, raw, columns, colSubjectiveDecisionCount)
	if err != nil {
		return record, err
	}
	netImpact, err := l.requiredFloat(row, raw, columns, colNetGoalImpact)
	if err != nil {
		return record, err
	}

	record.TotalOverturns = overturns
	record.GoalRelatedInterventions = goalRelated
	record.SubjectiveDecisionCount = subjective
	record.NetGoalImpact = netImpact

	if hasBreakdown {
		breakdown, err := l.parseBreakdown(row, raw, columns)
		if err != nil {
			return record, err
		}
		record.Breakdown = breakdown
	}

	return record, nil
}

// parseBreakdown reads the optional extended columns. Absent headers and
// blank cells read as 0; non-blank text still has to parse.
func (l *Loader) parseBreakdown(row int, raw excel.RawRowData, columns map[string]string) (*varstats.DecisionBreakdown, error) {
	var b varstats.DecisionBreakdown
	targets := []struct {
		key string
		dst *int
	}{
		{colLeadingToGoalsFor, &b.LeadingToGoalsFor},
		{colLeadingToGoalsAgainst, &b.LeadingToGoalsAgainst},
		{colDisallowedGoalsFor, &b.DisallowedGoalsFor},
		{colDisallowedGoalsAgainst, &b.DisallowedGoalsAgainst},
		{colSubjectiveDecisionsFor, &b.SubjectiveDecisionsFor},
		{colSubjectiveDecisionsAgainst, &b.SubjectiveDecisionsAgainst},
	}

	for _, target := range targets {
		value, err := l.optionalInt(row, raw, columns, target.key)
		if err != nil {
			return nil, err
		}
		*target.dst = value
	}

	netSubjective, err := l.optionalFloat(row, raw, columns, colNetSubjectiveScore)
	if err != nil {
		return nil, err
	}
	b.NetSubjectiveScore = netSubjective

	return &b, nil
}

func (l *Loader) requiredCell(row int, raw excel.RawRowData, columns map[string]string, key string) (string, error) {
	header, ok := columns[key]
	if !ok {
		return "", malformed(row, key)
	}
	value, ok := raw[header]
	if !ok || value == "" {
		return "", malformed(row, key)
	}
	return value, nil
}

func (l *Loader) requiredFloat(row int, raw excel.RawRowData, columns map[string]string, key string) (float64, error) {
	value, err := l.requiredCell(row, raw, columns, key)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, mismatch(row, key, value)
	}
	return parsed, nil
}

func (l *Loader) requiredInt(row int, raw excel.RawRowData, columns map[string]string, key string) (int, error) {
	parsed, err := l.requiredFloat(row, raw, columns, key)
	if err != nil {
		return 0, err
	}
	return int(parsed), nil
}

func (l *Loader) optionalFloat(row int, raw excel.RawRowData, columns map[string]string, key string) (float64, error) {
	header, ok := columns[key]
	if !ok {
		return 0, nil
	}
	value, ok := raw[header]
	if !ok || value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, mismatch(row, key, value)
	}
	return parsed, nil
}

func (l *Loader) optionalInt(row int, raw excel.RawRowData, columns map[string]string, key string) (int, error) {
	parsed, err := l.optionalFloat(row, raw, columns, key)
	if err != nil {
		return 0, err
	}
	return int(parsed), nil
}

func malformed(row int, field string) error {
	return apperrors.WithCode(apperrors.CodeMalformedRecord, &varstats.MalformedRecordError{Row: row, Field: field})
}

func mismatch(row int, column, value string) error {
	return apperrors.WithCode(apperrors.CodeTypeMismatch, &varstats.TypeMismatchError{Row: row, Column: column, Value: value})
}

// normalizeHeader lowercases and collapses spaces, hyphens and repeated
// underscores so "Net goal score" and "net_goal_score" resolve identically.
func normalizeHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.Join(strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == '_'
	}), "_")
	return normalized
}
