// Package scoring turns questionnaire responses into a maturity score,
// gap analysis, and prioritized recommendations. The scorer is a pure
// function of (schema, responses): it holds no mutable state, performs no
// I/O, and is safe for concurrent use across assessments.
package scoring

import (
	"math"
	"sort"

	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
)

// Responses is an externally supplied answer map keyed by question id.
// Accepted value shapes per entry:
//
//	"answer"                          flat string
//	[]string{...} / []any{...}        multi-select selections
//	map[string]any{"answer": ...}     object with an answer field
//
// A top-level entry may also be a group map holding any of the above keyed
// by question id (one nesting level). Malformed entries degrade to zero
// points; they never fail a scoring run.
type Responses map[string]any

// Scorer computes assessment scores against a fixed schema.
type Scorer struct {
	schema *questionnaire.Schema
}

// NewScorer creates a Scorer bound to the given schema.
func NewScorer(schema *questionnaire.Schema) *Scorer {
	return &Scorer{schema: schema}
}

// CalculateScore scores a full response map. Unknown question ids, missing
// answers, and answers outside the option set all score zero; the result is
// always complete and well-formed.
func (s *Scorer) CalculateScore(responses Responses) *ScoreResult {
	questions := s.schema.Questions()
	maxScore := s.schema.MaxScore()

	perQuestion := make([]QuestionScore, 0, len(questions))
	totalScore := 0

	for _, q := range questions {
		answer, found := resolveAnswer(responses, q.ID)

		points := 0
		var userAnswer any
		if found {
			points = s.ScoreQuestion(q, answer)
			userAnswer = normalizeAnswer(answer)
		}
		totalScore += points

		perQuestion = append(perQuestion, QuestionScore{
			QuestionID: q.ID,
			Domain:     q.Domain,
			Text:       q.Text,
			Points:     points,
			MaxPoints:  q.MaxPoints(),
			UserAnswer: userAnswer,
		})
	}

	percentage := 0.0
	if maxScore > 0 {
		percentage = float64(totalScore) / float64(maxScore) * 100
	}

	average := 0.0
	if len(questions) > 0 {
		average = float64(totalScore) / float64(len(questions))
	}

	maturity := maturityForPercentage(percentage)

	return &ScoreResult{
		PerQuestion:     perQuestion,
		TotalScore:      totalScore,
		MaxScore:        maxScore,
		Percentage:      round1(percentage),
		AverageScore:    round1(average),
		Maturity:        maturity,
		Gap:             gapAnalysis(totalScore, maxScore),
		Recommendations: buildRecommendations(perQuestion, maturity.Level),
	}
}

// ScoreQuestion scores a single question against a raw answer value.
//
//   - text: the free-text heuristic (see ScoreFreeText)
//   - single_select: option lookup; unknown options score 0
//   - multi_select: the MAXIMUM of the selected options' points, not the
//     sum; one best-practice control credits the question fully
func (s *Scorer) ScoreQuestion(q questionnaire.Question, answer any) int {
	switch q.Type {
	case questionnaire.QuestionTypeText:
		text, ok := answer.(string)
		if !ok {
			return 0
		}
		return ScoreFreeText(text)

	case questionnaire.QuestionTypeSingleSelect:
		label, ok := answer.(string)
		if !ok {
			return 0
		}
		return q.Scoring[label]

	case questionnaire.QuestionTypeMultiSelect:
		best := 0
		for _, label := range selectedOptions(answer) {
			if pts, ok := q.Scoring[label]; ok && pts > best {
				best = pts
			}
		}
		return best
	}
	return 0
}

// LookupAnswer resolves the answer for a question id from a raw response
// map, applying the same shape normalization the scorer uses. The boolean
// reports whether an answer was present at all.
func LookupAnswer(responses Responses, questionID string) (any, bool) {
	return resolveAnswer(responses, questionID)
}

// resolveAnswer finds the raw answer for a question id within the supported
// response shapes. Flat direct matches win over nested group matches. Group
// keys are scanned in sorted order so that duplicate ids across groups
// always resolve the same way for the same input.
func resolveAnswer(responses Responses, questionID string) (any, bool) {
	if raw, ok := responses[questionID]; ok {
		return unwrapAnswer(raw), true
	}

	// Search one level of nested group maps, e.g. {section: {id: answer}}.
	groupKeys := make([]string, 0, len(responses))
	for k := range responses {
		groupKeys = append(groupKeys, k)
	}
	sort.Strings(groupKeys)

	for _, k := range groupKeys {
		group, ok := responses[k].(map[string]any)
		if !ok {
			continue
		}
		if raw, ok := group[questionID]; ok {
			return unwrapAnswer(raw), true
		}
	}
	return nil, false
}

// unwrapAnswer extracts the answer from an object-with-answer shape.
func unwrapAnswer(raw any) any {
	if obj, ok := raw.(map[string]any); ok {
		return obj["answer"]
	}
	return raw
}

// selectedOptions coerces a multi-select answer into a label list. A bare
// string counts as a single selection; anything else is ignored.
func selectedOptions(answer any) []string {
	switch v := answer.(type) {
	case []string:
		return v
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			if label, ok := item.(string); ok {
				labels = append(labels, label)
			}
		}
		return labels
	case string:
		return []string{v}
	}
	return nil
}

// normalizeAnswer reduces a raw answer to the form reported in the result:
// a string, a []string, or nil for anything unusable.
func normalizeAnswer(answer any) any {
	switch v := answer.(type) {
	case string:
		return v
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			if label, ok := item.(string); ok {
				labels = append(labels, label)
			}
		}
		return labels
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
