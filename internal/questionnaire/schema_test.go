package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s := Default()

	assert.Equal(t, DefaultSection, s.Section())
	assert.Equal(t, 12, s.QuestionCount())
	assert.Equal(t, 48, s.MaxScore())
}

func TestDefaultSchemaOrderIsStable(t *testing.T) {
	first := Default().Questions()
	second := Default().Questions()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	assert.Equal(t, "q1_rto", first[0].ID)
	assert.Equal(t, "q12_ransomware_resilience", first[len(first)-1].ID)
}

func TestQuestionsReturnsCopy(t *testing.T) {
	s := Default()

	qs := s.Questions()
	qs[0].ID = "mutated"

	assert.Equal(t, "q1_rto", s.Questions()[0].ID)
}

func TestQuestionMaxPoints(t *testing.T) {
	assert.Equal(t, TextQuestionMaxPoints, Question{Type: QuestionTypeText}.MaxPoints())

	q := Question{
		Type:    QuestionTypeSingleSelect,
		Options: []string{"a", "b"},
		Scoring: map[string]int{"a": 1, "b": 3},
	}
	assert.Equal(t, 3, q.MaxPoints())
}

func TestNewRejectsOrphanedScore(t *testing.T) {
	_, err := New("s", []Question{{
		ID:      "q1",
		Type:    QuestionTypeSingleSelect,
		Options: []string{"a"},
		Scoring: map[string]int{"a": 1, "ghost": 2},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaIntegrity)
}

func TestNewRejectsUnscoredOption(t *testing.T) {
	_, err := New("s", []Question{{
		ID:      "q1",
		Type:    QuestionTypeMultiSelect,
		Options: []string{"a", "b"},
		Scoring: map[string]int{"a": 1},
	}})
	assert.ErrorIs(t, err, ErrSchemaIntegrity)
}

func TestNewRejectsDuplicateOptions(t *testing.T) {
	_, err := New("s", []Question{{
		ID:      "q1",
		Type:    QuestionTypeSingleSelect,
		Options: []string{"a", "a"},
		Scoring: map[string]int{"a": 1},
	}})
	assert.ErrorIs(t, err, ErrSchemaIntegrity)
}

func TestNewRejectsNegativePoints(t *testing.T) {
	_, err := New("s", []Question{{
		ID:      "q1",
		Type:    QuestionTypeSingleSelect,
		Options: []string{"a"},
		Scoring: map[string]int{"a": -1},
	}})
	assert.ErrorIs(t, err, ErrSchemaIntegrity)
}

func TestNewRejectsScoredTextQuestion(t *testing.T) {
	_, err := New("s", []Question{{
		ID:      "q1",
		Type:    QuestionTypeText,
		Scoring: map[string]int{"a": 1},
	}})
	assert.ErrorIs(t, err, ErrSchemaIntegrity)
}

func TestMaxScoreSumsBestOptions(t *testing.T) {
	s, err := New("s", []Question{
		{
			ID:      "q1",
			Type:    QuestionTypeSingleSelect,
			Options: []string{"low", "high"},
			Scoring: map[string]int{"low": 0, "high": 4},
		},
		{ID: "q2", Type: QuestionTypeText},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, s.MaxScore())
}
