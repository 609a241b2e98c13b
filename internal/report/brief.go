// Package report builds the markdown season brief summarizing the VAR
// metrics table. The dashboard renders it to HTML; the report CLI writes it
// next to the charts.
package report

import (
	"fmt"
	"sort"
	"strings"

	"varlens/domain/varstats"
	"varlens/internal/profiling"
)

// Brief holds the generated markdown plus the headline numbers behind it.
type Brief struct {
	Markdown      string
	TeamCount     int
	MostFavored   string
	LeastFavored  string
	ZeroOverturns []string
}

// Build produces the season brief from the computed table and its profiles.
func Build(metrics []varstats.TeamMetrics, profiles []profiling.ColumnProfile) Brief {
	brief := Brief{TeamCount: len(metrics)}
	if len(metrics) == 0 {
		brief.Markdown = "# VAR Season Brief\n\nNo teams loaded.\n"
		return brief
	}

	ranked := make([]varstats.TeamMetrics, len(metrics))
	copy(ranked, metrics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ComprehensiveBias > ranked[j].ComprehensiveBias
	})
	brief.MostFavored = ranked[0].Team
	brief.LeastFavored = ranked[len(ranked)-1].Team

	for _, m := range metrics {
		if m.TotalOverturns == 0 {
			brief.ZeroOverturns = append(brief.ZeroOverturns, m.Team)
		}
	}

	var b strings.Builder
	b.WriteString("# VAR Season Brief\n\n")
	fmt.Fprintf(&b, "Season table covers **%d teams**. Bias scoring ranks **%s** as the most VAR-favored side and **%s** as the least.\n\n",
		brief.TeamCount, brief.MostFavored, brief.LeastFavored)

	b.WriteString("## Bias ranking\n\n")
	b.WriteString("| Rank | Team | Bias score | Complexity | Comprehensive bias | Net goal impact |\n")
	b.WriteString("|---:|---|---:|---:|---:|---:|\n")
	for i, m := range ranked {
		fmt.Fprintf(&b, "| %d | %s | %.3f | %.1f | %.3f | %+.1f |\n",
			i+1, m.Team, m.BiasScore, m.ComplexityIndex, m.ComprehensiveBias, m.NetGoalImpact)
	}
	b.WriteString("\n")

	if len(profiles) > 0 {
		b.WriteString("## League column summaries\n\n")
		b.WriteString("| Column | Mean | Std dev | Min | Median | Max |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|\n")
		for _, p := range profiles {
			fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
				p.Name, p.Mean, p.StdDev, p.Min, p.Median, p.Max)
		}
		b.WriteString("\n")
	}

	if len(brief.ZeroOverturns) > 0 {
		fmt.Fprintf(&b, "## Notes\n\n- %s had no overturned decisions; their bias score is defined as 0 rather than an undefined ratio.\n",
			strings.Join(brief.ZeroOverturns, ", "))
		b.WriteString("- The complexity index uses the default equal weighting (plain sum of goal-related and subjective counts).\n")
		b.WriteString("- Comprehensive bias weights (0.3/0.2/0.3/0.2) follow the published analysis and are presentation defaults, not calibrated constants.\n")
	} else {
		b.WriteString("## Notes\n\n- The complexity index uses the default equal weighting (plain sum of goal-related and subjective counts).\n")
		b.WriteString("- Comprehensive bias weights (0.3/0.2/0.3/0.2) follow the published analysis and are presentation defaults, not calibrated constants.\n")
	}

	brief.Markdown = b.String()
	return brief
}
