package profiling

import (
	"varlens/domain/varstats"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix is the pairwise Pearson correlation over the raw VAR
// columns, in ColumnNames order. Matrix[i][j] is the correlation between
// columns i and j; constant columns correlate as 0 off the diagonal.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Matrix  [][]float64 `json:"matrix"`
}

// Correlate builds the correlation matrix for the season table.
func Correlate(metrics []varstats.TeamMetrics) CorrelationMatrix {
	names := ColumnNames()
	columns := make([][]float64, len(names))
	for i, name := range names {
		columns[i], _ = Column(metrics, name)
	}

	matrix := make([][]float64, len(names))
	for i := range names {
		matrix[i] = make([]float64, len(names))
		for j := range names {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			r := stat.Correlation(columns[i], columns[j], nil)
			if r != r { // NaN from a zero-variance column
				r = 0
			}
			matrix[i][j] = r
		}
	}

	return CorrelationMatrix{Columns: names, Matrix: matrix}
}
