package questionnaire

import (
	"errors"
	"fmt"
)

// ErrSchemaIntegrity indicates a question whose scoring table and option list
// disagree. It is returned from New at load time and should abort startup.
var ErrSchemaIntegrity = errors.New("questionnaire schema integrity error")

// Schema is a versioned, immutable set of assessment questions. Build it once
// during startup and share it freely; all methods are read-only.
type Schema struct {
	section   string
	questions []Question
	maxScore  int
}

// New validates the question set and returns an immutable Schema.
// The order of questions is the canonical display and reporting order.
func New(section string, questions []Question) (*Schema, error) {
	for _, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
	}

	s := &Schema{
		section:   section,
		questions: make([]Question, len(questions)),
	}
	copy(s.questions, questions)

	for _, q := range s.questions {
		s.maxScore += q.MaxPoints()
	}
	return s, nil
}

// Section returns the assessment section name.
func (s *Schema) Section() string {
	return s.section
}

// Questions returns the full question set in canonical order.
// The returned slice is a copy; callers may not mutate schema state.
func (s *Schema) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// QuestionCount returns the number of questions in the schema.
func (s *Schema) QuestionCount() int {
	return len(s.questions)
}

// MaxScore returns the maximum attainable total score: the sum over all
// questions of the best option's points (text questions count as 4).
func (s *Schema) MaxScore() int {
	return s.maxScore
}

// validateQuestion enforces the scoring/options invariant for select
// questions: every scored label must be an option and every option must be
// scored. Text questions must carry no scoring table.
func validateQuestion(q Question) error {
	if q.ID == "" {
		return fmt.Errorf("%w: question with empty id", ErrSchemaIntegrity)
	}

	switch q.Type {
	case QuestionTypeText:
		if len(q.Scoring) != 0 {
			return fmt.Errorf("%w: text question %q has a scoring table", ErrSchemaIntegrity, q.ID)
		}
		return nil
	case QuestionTypeSingleSelect, QuestionTypeMultiSelect:
		// fallthrough to option checks below
	default:
		return fmt.Errorf("%w: question %q has unknown type %q", ErrSchemaIntegrity, q.ID, q.Type)
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("%w: question %q has duplicate option %q", ErrSchemaIntegrity, q.ID, opt)
		}
		seen[opt] = struct{}{}

		pts, ok := q.Scoring[opt]
		if !ok {
			return fmt.Errorf("%w: question %q option %q has no score", ErrSchemaIntegrity, q.ID, opt)
		}
		if pts < 0 {
			return fmt.Errorf("%w: question %q option %q has negative score", ErrSchemaIntegrity, q.ID, opt)
		}
	}

	for label := range q.Scoring {
		if _, ok := seen[label]; !ok {
			return fmt.Errorf("%w: question %q scores unknown option %q", ErrSchemaIntegrity, q.ID, label)
		}
	}
	return nil
}
