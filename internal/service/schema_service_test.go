package service

import (
	"testing"

	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaSectionsGroupByDomain(t *testing.T) {
	svc := NewSchemaService(questionnaire.Default(), nil, zerolog.Nop())

	sections := svc.Sections()
	require.NotEmpty(t, sections)

	// Every question appears exactly once across sections.
	total := 0
	seen := make(map[string]bool)
	for _, section := range sections {
		assert.NotEmpty(t, section.Domain)
		for _, q := range section.Questions {
			assert.False(t, seen[q.ID], "question %s appears twice", q.ID)
			seen[q.ID] = true
			assert.Equal(t, section.Domain, q.Domain)
			total++
		}
	}
	assert.Equal(t, questionnaire.Default().QuestionCount(), total)
}

func TestSchemaRenderHidesScoringWeights(t *testing.T) {
	svc := NewSchemaService(questionnaire.Default(), nil, zerolog.Nop())

	payload := svc.render()
	assert.Equal(t, 12, payload.TotalQuestions)
	assert.Equal(t, 48, payload.MaxScore)
	require.Len(t, payload.Questions, 12)

	for _, q := range payload.Questions {
		if q.Type == string(questionnaire.QuestionTypeText) {
			assert.Empty(t, q.Options)
			assert.Equal(t, questionnaire.TextQuestionMaxPoints, q.MaxPoints)
			continue
		}
		assert.NotEmpty(t, q.Options)
		assert.Equal(t, 4, q.MaxPoints)
	}
}
