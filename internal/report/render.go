package report

import (
	"fmt"
	"strings"
)

// NoRecommendationsNote is shown on every surface when no question was
// answered unsafely.
const NoRecommendationsNote = "Based on your answers, no urgent recommendations were identified. " +
	"Continue to review and maintain your current cybersecurity practices."

// Markdown renders a report as a Markdown document.
func Markdown(r *Report) string {
	var b strings.Builder

	b.WriteString("# Cybersecurity Self-Assessment Report\n\n")
	fmt.Fprintf(&b, "**Participant:** %s (%s)\n", r.Participant.Name, r.Participant.Business)
	fmt.Fprintf(&b, "**Overall security score:** %.1f / 100\n", r.Result.OverallScore)
	fmt.Fprintf(&b, "**Overall risk level:** %s\n", r.Result.RiskLevel)
	fmt.Fprintf(&b, "**Internal risk points:** %d out of %d\n\n",
		r.Result.RiskPoints, r.Result.MaxRiskPoints)

	b.WriteString("## Security by area\n\n")
	for _, p := range r.Result.Pillars {
		fmt.Fprintf(&b, "### %s: %.1f / 100\n\n", p.Name, p.Percent())
		if p.Explanation != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Explanation)
		}
	}

	b.WriteString("## Recommended actions\n\n")
	if len(r.Result.Recommendations) == 0 {
		b.WriteString(NoRecommendationsNote + "\n\n")
	} else {
		for i, rec := range r.Result.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Report %s, generated %s by %s %s\n",
		r.ReportID, r.Generated.Format("2 Jan 2006 15:04 MST"), r.Tool, r.Version)

	return b.String()
}

// Text renders the summary printed at the end of an interactive session.
func Text(r *Report) string {
	var b strings.Builder

	b.WriteString("\n=== Assessment Summary ===\n\n")
	fmt.Fprintf(&b, "Overall security score: %.1f / 100\n", r.Result.OverallScore)
	fmt.Fprintf(&b, "Overall risk level: %s\n", r.Result.RiskLevel)
	fmt.Fprintf(&b, "(Internal risk points: %d out of %d)\n\n",
		r.Result.RiskPoints, r.Result.MaxRiskPoints)

	b.WriteString("Security by area (higher is better):\n")
	for _, p := range r.Result.Pillars {
		fmt.Fprintf(&b, " - %s: %.1f / 100\n", p.Name, p.Percent())
	}
	b.WriteString("\n")

	b.WriteString("Recommended actions:\n")
	if len(r.Result.Recommendations) == 0 {
		fmt.Fprintf(&b, " %s\n", NoRecommendationsNote)
	} else {
		for i, rec := range r.Result.Recommendations {
			fmt.Fprintf(&b, " %d. %s\n", i+1, rec)
		}
	}

	return b.String()
}
