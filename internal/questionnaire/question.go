package questionnaire

// QuestionType discriminates how a question is presented and scored.
type QuestionType string

const (
	QuestionTypeSingleSelect QuestionType = "single_select"
	QuestionTypeMultiSelect  QuestionType = "multi_select"
	QuestionTypeText         QuestionType = "text"
)

// TextQuestionMaxPoints is the fixed ceiling for free-text questions.
// Text answers carry no option scoring, so they are capped to match the
// 0-4 scale used by select questions.
const TextQuestionMaxPoints = 4

// Question is a single assessment question. Questions are defined at build
// time and never mutated, so sharing them across requests is safe.
type Question struct {
	ID       string         `json:"question_id"`
	Domain   string         `json:"domain"`
	Text     string         `json:"question_text"`
	Type     QuestionType   `json:"question_type"`
	Options  []string       `json:"options"`
	Scoring  map[string]int `json:"scoring"`
	HelpText string         `json:"help_text,omitempty"`
	// Required is advisory for the collecting UI. The scorer never enforces
	// it; unanswered questions simply score zero.
	Required bool `json:"required"`
}

// MaxPoints returns the highest score attainable on this question.
func (q Question) MaxPoints() int {
	if q.Type == QuestionTypeText {
		return TextQuestionMaxPoints
	}
	max := 0
	for _, pts := range q.Scoring {
		if pts > max {
			max = pts
		}
	}
	return max
}

// HasOption reports whether label is one of the question's options.
func (q Question) HasOption(label string) bool {
	for _, opt := range q.Options {
		if opt == label {
			return true
		}
	}
	return false
}
