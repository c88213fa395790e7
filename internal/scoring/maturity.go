package scoring

// The five maturity tiers are keyed off the percentage of the maximum
// attainable score. Boundaries are inclusive at the upper edge, so every
// percentage in [0,100] maps to exactly one tier.
//
//	0-25%    Level 1 BASIC
//	25-50%   Level 2 RISK-INFORMED
//	50-75%   Level 3 REPEATABLE
//	75-90%   Level 4 MANAGED
//	90-100%  Level 5 ADAPTIVE
func maturityForPercentage(pct float64) Maturity {
	switch {
	case pct <= 25:
		return Maturity{
			Level:           1,
			Label:           "BASIC",
			Characteristics: "Traditional backup; manual recovery; days/weeks RTO",
			NextStep:        "Activate immutability & air-gapping",
		}
	case pct <= 50:
		return Maturity{
			Level:           2,
			Label:           "RISK-INFORMED",
			Characteristics: "Backup hardening; reactive response; aware of threats",
			NextStep:        "Establish recovery playbooks & testing",
		}
	case pct <= 75:
		return Maturity{
			Level:           3,
			Label:           "REPEATABLE",
			Characteristics: "Air-gapped; documented playbooks; 24-48hr recovery",
			NextStep:        "Deploy detection & monitoring capabilities",
		}
	case pct <= 90:
		return Maturity{
			Level:           4,
			Label:           "MANAGED",
			Characteristics: "Proactive detection; anomaly alerts; hours-level recovery",
			NextStep:        "Automate orchestration & clean-room setup",
		}
	default:
		return Maturity{
			Level:           5,
			Label:           "ADAPTIVE",
			Characteristics: "Fully automated; AI-driven; minutes-level recovery",
			NextStep:        "Continuous optimization & innovation",
		}
	}
}

// gapAnalysis sizes the effort to reach the maximum score. Buckets are
// relative to the schema maximum so they generalize across question counts.
func gapAnalysis(totalScore, maxScore int) GapAnalysis {
	gap := maxScore - totalScore

	effort := "High - Strategic transformation required"
	switch {
	case maxScore == 0 || gap*10 <= maxScore: // gap <= 10% of max
		effort = "Low - Tuning required"
	case gap*10 <= 3*maxScore: // gap <= 30% of max
		effort = "Medium - Dedicated project required"
	}

	return GapAnalysis{
		CurrentPoints:   totalScore,
		TargetPoints:    maxScore,
		GapPoints:       gap,
		EstimatedEffort: effort,
	}
}
