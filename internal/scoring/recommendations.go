package scoring

const (
	// Questions scoring at or below this threshold produce a critical
	// per-question recommendation.
	criticalScoreThreshold = 1
	// Questions scoring exactly this value produce a secondary
	// recommendation, capped at moderateRecommendationCap entries.
	moderateScore             = 2
	moderateRecommendationCap = 3

	recommendationTargetScore = 4
)

type recommendationText struct {
	Title       string
	Description string
}

// questionRecommendations maps question ids to static remediation guidance.
// Questions outside this table (e.g. from a custom schema) simply produce no
// per-question recommendation.
var questionRecommendations = map[string]recommendationText{
	"q1_rto": {
		Title:       "Reduce Recovery Time Objective (RTO)",
		Description: "Your current RTO is too long. Target reducing recovery time to hours or minutes through automation and better infrastructure.",
	},
	"q2_backup_protection": {
		Title:       "Strengthen Backup Protection",
		Description: "Implement immutability and zero-trust controls to protect backups from ransomware and unauthorized modifications.",
	},
	"q3_recovery_testing": {
		Title:       "Increase Recovery Testing Frequency",
		Description: "Conduct quarterly (or more frequent) end-to-end recovery drills and document all results.",
	},
	"q4_incident_response": {
		Title:       "Automate Incident Response",
		Description: "Move from manual processes to automated orchestrated response with defined playbooks and monitoring integration.",
	},
	"q5_threat_detection": {
		Title:       "Enhance Threat Detection Capabilities",
		Description: "Implement proactive threat detection with deception sensors, anomaly detection, or AI-driven predictive systems.",
	},
	"q6_asset_coverage": {
		Title:       "Expand Critical Asset Coverage",
		Description: "Ensure 95%+ of critical data assets have tested, validated recovery capabilities.",
	},
	"q7_recovery_confidence": {
		Title:       "Improve Recovery Confidence",
		Description: "Increase confidence in data integrity through regular validation, testing, and verification processes.",
	},
	"q8_coverage_gaps": {
		Title:       "Address System Coverage Gaps",
		Description: "Develop and test recovery procedures for all critical systems currently without documented processes.",
	},
	"q9_recovery_speed": {
		Title:       "Accelerate Recovery Speed",
		Description: "Reduce time to isolate and recover compromised systems to under 4 hours through automation and improved processes.",
	},
	"q10_metrics_reporting": {
		Title:       "Implement Recovery Metrics Dashboard",
		Description: "Deploy automated dashboards or real-time scorecards to track recovery KPIs and report to leadership.",
	},
	"q11_infrastructure_investment": {
		Title:       "Modernize Backup Infrastructure",
		Description: "Invest in enterprise-grade, cloud-native backup infrastructure to improve resilience and recovery capabilities.",
	},
	"q12_ransomware_resilience": {
		Title:       "Verify Ransomware Recovery Capability",
		Description: "Test and verify your ability to recover independently from ransomware without paying ransom. Aim for automated, verified recovery.",
	},
}

// maturityRecommendation is the single tier-level closing recommendation
// appended to every recommendation list.
func maturityRecommendation(level int) Recommendation {
	switch level {
	case 1:
		return Recommendation{
			Priority:    "Critical",
			Title:       "Foundational Cyber Resilience Program Required",
			Description: "Immediate action needed: Establish baseline backup procedures, implement basic immutability controls, document all recovery processes, and begin monthly testing regimen. Consider engaging cyber resilience consultants for rapid improvement.",
		}
	case 2:
		return Recommendation{
			Priority:    "High",
			Title:       "Accelerate to Repeatable Maturity Level",
			Description: "Focus on: Increasing testing frequency to quarterly, implementing immutability + air-gap protection, automating alerting mechanisms, and expanding asset coverage to 85%+.",
		}
	case 3:
		return Recommendation{
			Priority:    "Medium",
			Title:       "Advance Toward Managed State",
			Description: "Next steps: Introduce automation in response workflows, implement deception/anomaly detection, target 95%+ asset coverage, reduce recovery time to hours, and add real-time monitoring dashboards.",
		}
	case 4:
		return Recommendation{
			Priority:    "Low",
			Title:       "Optimize for Industry Leadership",
			Description: "Continue improving: Achieve 95-100% validated asset coverage, implement AI-driven threat prediction, automate full recovery orchestration, target sub-hour recovery times, deploy continuous automated validation.",
		}
	default:
		return Recommendation{
			Priority:    "Low",
			Title:       "Maintain Excellence and Continuous Improvement",
			Description: "Sustain your industry-leading position through continuous improvement programs, industry benchmarking, advanced threat intelligence integration, regular executive reviews, and longitudinal maturity tracking.",
		}
	}
}

// buildRecommendations assembles the prioritized recommendation list:
// critical gaps (score <= 1) in schema order, then up to three moderate gaps
// (score == 2) in schema order, then exactly one tier-level closing entry.
// Unanswered questions score zero but produce no per-question entry; a
// partial submission should not read as a wall of critical findings.
func buildRecommendations(perQuestion []QuestionScore, maturityLevel int) []Recommendation {
	var recs []Recommendation

	for _, qs := range perQuestion {
		if qs.UserAnswer == nil || qs.Points > criticalScoreThreshold {
			continue
		}
		if rec, ok := questionRecommendation(qs, "Critical"); ok {
			recs = append(recs, rec)
		}
	}

	moderate := 0
	for _, qs := range perQuestion {
		if qs.UserAnswer == nil || qs.Points != moderateScore || moderate >= moderateRecommendationCap {
			continue
		}
		if rec, ok := questionRecommendation(qs, "High"); ok {
			recs = append(recs, rec)
			moderate++
		}
	}

	return append(recs, maturityRecommendation(maturityLevel))
}

func questionRecommendation(qs QuestionScore, priority string) (Recommendation, bool) {
	text, ok := questionRecommendations[qs.QuestionID]
	if !ok {
		return Recommendation{}, false
	}
	return Recommendation{
		Priority:     priority,
		Title:        text.Title,
		Description:  text.Description,
		CurrentScore: qs.Points,
		TargetScore:  recommendationTargetScore,
	}, true
}
