package scoring

import (
	"testing"

	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultScorer(t *testing.T) *Scorer {
	t.Helper()
	return NewScorer(questionnaire.Default())
}

// bestAnswers answers every question in the default schema with its
// highest-scoring option (or "None" for the free-text question).
func bestAnswers(t *testing.T) Responses {
	t.Helper()
	responses := Responses{}
	for _, q := range questionnaire.Default().Questions() {
		if q.Type == questionnaire.QuestionTypeText {
			responses[q.ID] = "None"
			continue
		}
		best, bestPts := "", -1
		for label, pts := range q.Scoring {
			if pts > bestPts {
				best, bestPts = label, pts
			}
		}
		if q.Type == questionnaire.QuestionTypeMultiSelect {
			responses[q.ID] = []string{best}
		} else {
			responses[q.ID] = best
		}
	}
	return responses
}

func TestCalculateScoreIsDeterministic(t *testing.T) {
	scorer := defaultScorer(t)
	responses := Responses{
		"q1_rto":              "Hours",
		"q2_backup_protection": []string{"Role-based controls", "Immutability + Air-gap"},
		"q8_coverage_gaps":    "Server A, Server B, Server C",
	}

	first := scorer.CalculateScore(responses)
	second := scorer.CalculateScore(responses)
	assert.Equal(t, first, second)
}

func TestCalculateScoreRangeInvariant(t *testing.T) {
	scorer := defaultScorer(t)
	samples := []Responses{
		{},
		{"q1_rto": "Minutes"},
		bestAnswers(t),
		{"q1_rto": "nonsense", "unknown_question": "whatever"},
	}
	for _, responses := range samples {
		result := scorer.CalculateScore(responses)
		assert.GreaterOrEqual(t, result.TotalScore, 0)
		assert.LessOrEqual(t, result.TotalScore, result.MaxScore)
		assert.GreaterOrEqual(t, result.Percentage, 0.0)
		assert.LessOrEqual(t, result.Percentage, 100.0)
	}
}

func TestUpgradingAnswerNeverDecreasesScore(t *testing.T) {
	scorer := defaultScorer(t)

	base := Responses{"q1_rto": "Days"}
	upgraded := Responses{"q1_rto": "Hours"}

	assert.GreaterOrEqual(t,
		scorer.CalculateScore(upgraded).TotalScore,
		scorer.CalculateScore(base).TotalScore,
	)
}

func TestMultiSelectScoresMaximumNotSum(t *testing.T) {
	scorer := defaultScorer(t)
	q := questionnaire.Default().Questions()[1] // q2_backup_protection
	require.Equal(t, questionnaire.QuestionTypeMultiSelect, q.Type)

	set1 := []string{"Network isolation only", "Role-based controls"}     // max 1
	set2 := []string{"Immutability + Air-gap", "Zero-trust immutable"}    // max 4
	union := append(append([]string{}, set1...), set2...)

	s1 := scorer.ScoreQuestion(q, set1)
	s2 := scorer.ScoreQuestion(q, set2)
	assert.Equal(t, 1, s1)
	assert.Equal(t, 4, s2)

	// Union scores max(set1, set2), never the sum.
	assert.Equal(t, s2, scorer.ScoreQuestion(q, union))
}

func TestMultiSelectEdgeCases(t *testing.T) {
	scorer := defaultScorer(t)
	q := questionnaire.Default().Questions()[1]

	assert.Equal(t, 0, scorer.ScoreQuestion(q, []string{}))
	assert.Equal(t, 0, scorer.ScoreQuestion(q, []string{"not an option"}))
	// A bare string counts as a single selection.
	assert.Equal(t, 4, scorer.ScoreQuestion(q, "Zero-trust immutable"))
	// JSON-decoded answers arrive as []any.
	assert.Equal(t, 2, scorer.ScoreQuestion(q, []any{"Immutability + Air-gap"}))
}

func TestSingleSelectUnknownAnswerScoresZero(t *testing.T) {
	scorer := defaultScorer(t)
	q := questionnaire.Default().Questions()[0]

	assert.Equal(t, 0, scorer.ScoreQuestion(q, "no such option"))
	assert.Equal(t, 0, scorer.ScoreQuestion(q, ""))
	// A list for a single-select is malformed and ignored, never an error.
	assert.Equal(t, 0, scorer.ScoreQuestion(q, []string{"Minutes"}))
	assert.Equal(t, 0, scorer.ScoreQuestion(q, 42))
}

func TestEmptyResponsesProduceCompleteResult(t *testing.T) {
	scorer := defaultScorer(t)

	result := scorer.CalculateScore(Responses{})

	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, 48, result.MaxScore)
	assert.Equal(t, 0.0, result.Percentage)
	assert.Equal(t, 1, result.Maturity.Level)
	assert.Len(t, result.PerQuestion, 12)

	// Unanswered questions yield no per-question recommendations; only the
	// tier-level closing recommendation remains.
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Critical", result.Recommendations[0].Priority)
}

func TestAnswerShapeResolution(t *testing.T) {
	scorer := defaultScorer(t)

	flat := Responses{"q1_rto": "Minutes"}
	wrapped := Responses{"q1_rto": map[string]any{"answer": "Minutes"}}
	nested := Responses{"Cyber Resilience Assessment": map[string]any{"q1_rto": "Minutes"}}
	nestedWrapped := Responses{
		"Cyber Resilience Assessment": map[string]any{
			"q1_rto": map[string]any{"answer": "Minutes"},
		},
	}

	for _, responses := range []Responses{flat, wrapped, nested, nestedWrapped} {
		result := scorer.CalculateScore(responses)
		assert.Equal(t, 4, result.PerQuestion[0].Points)
		assert.Equal(t, "Minutes", result.PerQuestion[0].UserAnswer)
	}
}

func TestFlatAnswerWinsOverNested(t *testing.T) {
	scorer := defaultScorer(t)

	responses := Responses{
		"q1_rto": "Minutes",
		"group":  map[string]any{"q1_rto": "Days/Weeks"},
	}
	assert.Equal(t, 4, scorer.CalculateScore(responses).PerQuestion[0].Points)
}

func TestConflictingGroupAnswersResolveDeterministically(t *testing.T) {
	scorer := defaultScorer(t)

	// The same question id appears in two groups with different answers.
	// Sorted group order makes section_a win, on every call.
	responses := Responses{
		"section_a": map[string]any{"q1_rto": "Minutes"},
		"section_b": map[string]any{"q1_rto": "Days/Weeks"},
	}

	for i := 0; i < 200; i++ {
		result := scorer.CalculateScore(responses)
		assert.Equal(t, 4, result.TotalScore)
		assert.Equal(t, "Minutes", result.PerQuestion[0].UserAnswer)
	}
}

func TestPerQuestionPreservesSchemaOrder(t *testing.T) {
	scorer := defaultScorer(t)
	result := scorer.CalculateScore(bestAnswers(t))

	questions := questionnaire.Default().Questions()
	require.Len(t, result.PerQuestion, len(questions))
	for i, q := range questions {
		assert.Equal(t, q.ID, result.PerQuestion[i].QuestionID)
		assert.Equal(t, q.Domain, result.PerQuestion[i].Domain)
	}
}

func TestPerfectSubmission(t *testing.T) {
	scorer := defaultScorer(t)

	result := scorer.CalculateScore(bestAnswers(t))

	assert.Equal(t, result.MaxScore, result.TotalScore)
	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, 5, result.Maturity.Level)
	assert.Equal(t, "ADAPTIVE", result.Maturity.Label)
	assert.Equal(t, 0, result.Gap.GapPoints)
	assert.Equal(t, "Low - Tuning required", result.Gap.EstimatedEffort)

	// No critical or moderate entries; only the tier-5 closing one.
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Maintain Excellence and Continuous Improvement", result.Recommendations[0].Title)
}

func TestPartialZeroSubmission(t *testing.T) {
	scorer := defaultScorer(t)

	// Answer 6 of 12 questions with their lowest-scoring option, leave the
	// rest unanswered.
	responses := Responses{
		"q1_rto":               "Days/Weeks",
		"q2_backup_protection": []string{"Network isolation only"},
		"q3_recovery_testing":  "None",
		"q4_incident_response": "Manual ad-hoc process",
		"q6_asset_coverage":    "40-60%",
		"q9_recovery_speed":    "1-2 weeks",
	}

	result := scorer.CalculateScore(responses)

	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, 1, result.Maturity.Level)

	// One critical entry per zero-scoring answered question, plus the
	// tier-1 closing recommendation.
	require.Len(t, result.Recommendations, 7)
	for _, rec := range result.Recommendations[:6] {
		assert.Equal(t, "Critical", rec.Priority)
	}
	assert.Equal(t, "Foundational Cyber Resilience Program Required", result.Recommendations[6].Title)
}

func TestModerateRecommendationsCappedAtThree(t *testing.T) {
	scorer := defaultScorer(t)

	// Five questions answered with exactly 2-point options.
	responses := Responses{
		"q1_rto":               "12-24 hours",
		"q3_recovery_testing":  "2-3 drills",
		"q6_asset_coverage":    "75-85%",
		"q9_recovery_speed":    "24-48 hours",
		"q10_metrics_reporting": "Recovery reports",
	}

	result := scorer.CalculateScore(responses)

	var moderate int
	for _, rec := range result.Recommendations {
		if rec.Priority == "High" {
			moderate++
		}
	}
	assert.Equal(t, 3, moderate)
}

func TestEmptySchemaShortCircuitsPercentage(t *testing.T) {
	schema, err := questionnaire.New("empty", nil)
	require.NoError(t, err)

	result := NewScorer(schema).CalculateScore(Responses{"anything": "x"})

	assert.Equal(t, 0, result.MaxScore)
	assert.Equal(t, 0.0, result.Percentage)
	assert.Equal(t, 1, result.Maturity.Level)
	assert.NotEmpty(t, result.Recommendations)
}

func TestTextQuestionScoring(t *testing.T) {
	scorer := defaultScorer(t)

	result := scorer.CalculateScore(Responses{"q8_coverage_gaps": "None"})
	assert.Equal(t, 4, result.PerQuestion[7].Points)

	result = scorer.CalculateScore(Responses{"q8_coverage_gaps": "Server A, Server B, Server C"})
	assert.Equal(t, 2, result.PerQuestion[7].Points)
}

func TestSummarize(t *testing.T) {
	scorer := defaultScorer(t)

	summary := Summarize(scorer.CalculateScore(bestAnswers(t)))
	assert.Equal(t, "48/48", summary.Score)
	assert.Equal(t, "100.0%", summary.Percentage)
	assert.Equal(t, "ADAPTIVE", summary.Level)
	assert.Contains(t, summary.Summary, "industry-leading")

	summary = Summarize(scorer.CalculateScore(Responses{}))
	assert.Equal(t, "0/48", summary.Score)
	assert.Contains(t, summary.Summary, "critical cyber resilience gaps")
}
