package questionnaire

import "sync"

// DefaultSection is the section name of the built-in assessment.
const DefaultSection = "Cyber Resilience Assessment"

// Default returns the built-in Cyber Resilience Maturity Assessment schema:
// 12 strategic questions scored 0-4 points each, 48 points maximum.
// The schema is built once and shared; it never changes at runtime.
var Default = sync.OnceValue(func() *Schema {
	s, err := New(DefaultSection, defaultQuestions())
	if err != nil {
		// The built-in question set is compiled-in data; an integrity
		// failure here is a programming error.
		panic(err)
	}
	return s
})

func defaultQuestions() []Question {
	return []Question{
		{
			ID:     "q1_rto",
			Domain: "Recovery Time Objective",
			Text:   "What is the current maximum recovery time your organisation can tolerate without material business impact (RTO)?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"Days/Weeks", "Days", "12-24 hours", "Hours", "Minutes", "No idea",
			},
			Scoring: map[string]int{
				"Days/Weeks": 0, "Days": 1, "12-24 hours": 2, "Hours": 3, "Minutes": 4, "No idea": 0,
			},
			HelpText: "L1: Days/Weeks | L2: Days | L3: 12-24 hrs | L4: Hours | L5: Minutes",
			Required: true,
		},
		{
			ID:     "q2_backup_protection",
			Domain: "Data Protection & Immutability",
			Text:   "How are your backup systems currently protected from unauthorised access, modification, or deletion by attackers?",
			Type:   QuestionTypeMultiSelect,
			Options: []string{
				"Network isolation only", "Role-based controls", "Immutability + Air-gap",
				"Immutability + Multi-layer", "Zero-trust immutable", "No idea",
			},
			Scoring: map[string]int{
				"Network isolation only": 0, "Role-based controls": 1, "Immutability + Air-gap": 2,
				"Immutability + Multi-layer": 3, "Zero-trust immutable": 4, "No idea": 0,
			},
			HelpText: "Select every control in place. The strongest control determines the score.",
			Required: true,
		},
		{
			ID:     "q3_recovery_testing",
			Domain: "Recovery Testing & Validation",
			Text:   "In the past 12 months, how many unplanned data recovery scenarios has your organisation tested end-to-end?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"None", "1 drill in past 12mo", "2-3 drills", "Quarterly + documented",
				"Continuous automated", "No idea",
			},
			Scoring: map[string]int{
				"None": 0, "1 drill in past 12mo": 1, "2-3 drills": 2,
				"Quarterly + documented": 3, "Continuous automated": 4, "No idea": 0,
			},
			HelpText: "L1: None | L2: 1 drill | L3: 2-3 drills | L4: Quarterly + documented | L5: Continuous automated validation",
			Required: true,
		},
		{
			ID:     "q4_incident_response",
			Domain: "Incident Response Orchestration",
			Text:   "When a potential cyber incident is detected today, how is the incident response coordinated and executed?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"Manual ad-hoc process", "Documented playbook only", "Playbook + assigned roles",
				"Playbook + monitoring alerts", "Automated orchestrated response", "No idea",
			},
			Scoring: map[string]int{
				"Manual ad-hoc process": 0, "Documented playbook only": 1, "Playbook + assigned roles": 2,
				"Playbook + monitoring alerts": 3, "Automated orchestrated response": 4, "No idea": 0,
			},
			HelpText: "L1: Manual ad-hoc | L2: Playbook only | L3: Playbook + roles | L4: Playbook + alerts | L5: Automated orchestration",
			Required: true,
		},
		{
			ID:     "q5_threat_detection",
			Domain: "Threat Detection Capability",
			Text:   "How is your organisation currently detecting signs of compromise BEFORE data loss actually occurs?",
			Type:   QuestionTypeMultiSelect,
			Options: []string{
				"Logs reviewed post-incident", "Basic alerting on backups", "Threat-aware monitoring",
				"Deception sensors + anomaly", "AI-driven predictive detection", "No idea",
			},
			Scoring: map[string]int{
				"Logs reviewed post-incident": 0, "Basic alerting on backups": 1, "Threat-aware monitoring": 2,
				"Deception sensors + anomaly": 3, "AI-driven predictive detection": 4, "No idea": 0,
			},
			HelpText: "Select every detection capability in use. The strongest capability determines the score.",
			Required: true,
		},
		{
			ID:     "q6_asset_coverage",
			Domain: "Critical Asset Coverage",
			Text:   "What percentage of your critical data assets are covered under your current recovery capability?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"40-60%", "60-75%", "75-85%", "85-95%", "95-100% + validated", "No idea",
			},
			Scoring: map[string]int{
				"40-60%": 0, "60-75%": 1, "75-85%": 2, "85-95%": 3, "95-100% + validated": 4, "No idea": 0,
			},
			HelpText: "L1: 40-60% | L2: 60-75% | L3: 75-85% | L4: 85-95% | L5: 95-100% + validated",
			Required: true,
		},
		{
			ID:     "q7_recovery_confidence",
			Domain: "Recovery Confidence",
			Text:   "If you were to recover your entire organisation's data today, how confident are you in the integrity and completeness?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"30-40% confident", "40-60% confident", "60-75% confident",
				"75-90% confident", "90-100% confident", "No idea",
			},
			Scoring: map[string]int{
				"30-40% confident": 0, "40-60% confident": 1, "60-75% confident": 2,
				"75-90% confident": 3, "90-100% confident": 4, "No idea": 0,
			},
			HelpText: "L1: 30-40% | L2: 40-60% | L3: 60-75% | L4: 75-90% | L5: 90-100%",
			Required: true,
		},
		{
			ID:       "q8_coverage_gaps",
			Domain:   "System Coverage Gaps",
			Text:     "Which critical systems or data sources do NOT have a tested, documented recovery procedure?",
			Type:     QuestionTypeText,
			HelpText: "List specific systems or write 'None' if all systems are covered. The number of systems without coverage indicates the maturity gap.",
			Required: true,
		},
		{
			ID:     "q9_recovery_speed",
			Domain: "Recovery Speed",
			Text:   "In your current setup, how much time would it take to isolate a compromised system and recover to a known-clean state?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"1-2 weeks", "3-7 days", "24-48 hours", "4-12 hours", "Under 1 hour automated", "No idea",
			},
			Scoring: map[string]int{
				"1-2 weeks": 0, "3-7 days": 1, "24-48 hours": 2, "4-12 hours": 3,
				"Under 1 hour automated": 4, "No idea": 0,
			},
			HelpText: "L1: 1-2 weeks | L2: 3-7 days | L3: 24-48 hours | L4: 4-12 hours | L5: Under 1 hour automated",
			Required: true,
		},
		{
			ID:     "q10_metrics_reporting",
			Domain: "Metrics & Reporting",
			Text:   "How are recovery validations and post-incident metrics tracked and reported to leadership?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"Not tracked", "Manual post-mortems", "Recovery reports",
				"Automated dashboards", "Real-time exec scorecard", "No idea",
			},
			Scoring: map[string]int{
				"Not tracked": 0, "Manual post-mortems": 1, "Recovery reports": 2,
				"Automated dashboards": 3, "Real-time exec scorecard": 4, "No idea": 0,
			},
			HelpText: "L1: Not tracked | L2: Manual post-mortems | L3: Recovery reports | L4: Automated dashboards | L5: Real-time exec scorecard",
			Required: true,
		},
		{
			ID:     "q11_infrastructure_investment",
			Domain: "Infrastructure Investment",
			Text:   "What level of investment has been made in backup infrastructure over the past 24 months?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"Minimal/legacy", "Basic upgrades", "Moderate modernisation",
				"Significant investment", "Enterprise-grade cloud-native", "No idea",
			},
			Scoring: map[string]int{
				"Minimal/legacy": 0, "Basic upgrades": 1, "Moderate modernisation": 2,
				"Significant investment": 3, "Enterprise-grade cloud-native": 4, "No idea": 0,
			},
			HelpText: "L1: Minimal/legacy | L2: Basic upgrades | L3: Moderate | L4: Significant | L5: Enterprise-grade cloud-native",
			Required: true,
		},
		{
			ID:     "q12_ransomware_resilience",
			Domain: "Ransomware Resilience",
			Text:   "If ransomware locked all your systems today, could your organisation recover independently without paying ransom?",
			Type:   QuestionTypeSingleSelect,
			Options: []string{
				"Uncertain", "Possibly with manual effort", "Yes, with 48+ hours",
				"Yes, within hours", "Yes, verified automated recovery", "No idea",
			},
			Scoring: map[string]int{
				"Uncertain": 0, "Possibly with manual effort": 1, "Yes, with 48+ hours": 2,
				"Yes, within hours": 3, "Yes, verified automated recovery": 4, "No idea": 0,
			},
			HelpText: "L1: Uncertain | L2: Manual effort | L3: 48+ hours | L4: Within hours | L5: Verified automated recovery",
			Required: true,
		},
	}
}
