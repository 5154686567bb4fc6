package formatter

import (
	"fmt"
	"strings"

	"github.com/martinhruska/scopeburn/internal/app"
)

// FormatSlipReport renders the aggregate slip summary for the scope.
func FormatSlipReport(resp *app.ForecastResponse) string {
	var b strings.Builder
	s := resp.Summary

	avg := &s.AverageSlipDays
	b.WriteString(fmt.Sprintf("Average delivery: %s\n", SlipIndicator(avg)))
	b.WriteString(fmt.Sprintf("Projects: %s\n", Bold(fmt.Sprintf("%d", s.Total))))
	b.WriteString(formatSlipSummaryLine(s) + "\n")

	noTarget := s.Total - s.Delayed - s.OnTime - s.Ahead
	if noTarget > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d without a reference date", noTarget)) + "\n")
	}

	var worst *app.ProjectForecastView
	for i := range resp.Projects {
		p := &resp.Projects[i]
		if p.SlipDays == nil {
			continue
		}
		if worst == nil || *p.SlipDays < *worst.SlipDays {
			worst = p
		}
	}
	if worst != nil && *worst.SlipDays < 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("Worst: %s (%d workdays late)", worst.ProjectName, -*worst.SlipDays)) + "\n")
	}

	return RenderBox("Slip Report", b.String())
}
