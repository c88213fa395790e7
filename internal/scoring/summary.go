package scoring

import "fmt"

// ResultSummary is the customer-facing wrap-up of a scored assessment.
type ResultSummary struct {
	Summary    string `json:"summary"`
	Score      string `json:"score"`
	Percentage string `json:"percentage"`
	Level      string `json:"level"`
}

// Summarize renders the narrative summary for a score result, keyed by
// percentage band.
func Summarize(result *ScoreResult) ResultSummary {
	pct := result.Percentage
	label := result.Maturity.Label

	var summary string
	switch {
	case pct > 90:
		summary = fmt.Sprintf("Your organization demonstrates industry-leading cyber resilience with an overall maturity score of %.1f%% (%s). Your backup and recovery infrastructure is well-protected, automated, and continuously validated. You have verified capability to recover independently from ransomware attacks within minutes to hours, with high confidence in data integrity.", pct, label)
	case pct > 75:
		summary = fmt.Sprintf("Your organization shows strong cyber resilience with an overall maturity score of %.1f%% (%s). You have implemented automated response workflows, multi-layer immutability controls, and regular testing. Recovery times are measured in hours with high asset coverage. Continue advancing toward full automation and 100%% asset validation.", pct, label)
	case pct > 50:
		summary = fmt.Sprintf("Your organization has established a solid foundation for cyber resilience with an overall maturity score of %.1f%% (%s). Recovery procedures are documented and tested, with immutability controls in place. Focus on increasing automation, expanding asset coverage to 95%%+, and reducing recovery times from days to hours.", pct, label)
	case pct > 25:
		summary = fmt.Sprintf("Your organization is in the early stages of cyber resilience maturity with an overall maturity score of %.1f%% (%s). While basic controls and documentation exist, significant gaps remain in testing frequency, automation, and asset coverage. Prioritize implementing immutability, increasing testing to quarterly, and documenting all recovery procedures.", pct, label)
	default:
		summary = fmt.Sprintf("Your organization faces critical cyber resilience gaps with an overall maturity score of %.1f%% (%s). Recovery processes are largely manual and untested, with extended RTO measured in days or weeks. Immediate action required: establish baseline backup procedures, implement immutability controls, document recovery processes, and begin regular testing.", pct, label)
	}

	return ResultSummary{
		Summary:    summary,
		Score:      fmt.Sprintf("%d/%d", result.TotalScore, result.MaxScore),
		Percentage: fmt.Sprintf("%.1f%%", pct),
		Level:      label,
	}
}
