package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// schemaCacheTTL bounds staleness of the cached schema payload. The schema
// only changes on deploy, so a long TTL is fine.
const schemaCacheTTL = time.Hour

// QuestionView is the client-facing shape of a question. Scoring weights
// stay server-side.
type QuestionView struct {
	ID        string   `json:"question_id"`
	Domain    string   `json:"domain"`
	Text      string   `json:"question_text"`
	Type      string   `json:"question_type"`
	Options   []string `json:"options"`
	MaxPoints int      `json:"max_points"`
	HelpText  string   `json:"help_text,omitempty"`
	Required  bool     `json:"required"`
}

// SchemaPayload is the full questionnaire as served to clients.
type SchemaPayload struct {
	Section        string         `json:"section"`
	Questions      []QuestionView `json:"questions"`
	TotalQuestions int            `json:"total_questions"`
	MaxScore       int            `json:"max_score"`
}

// SectionView groups questions by security domain for sectioned UIs.
type SectionView struct {
	Domain    string         `json:"domain"`
	Questions []QuestionView `json:"questions"`
}

// SchemaService renders and caches the questionnaire schema.
type SchemaService struct {
	schema *questionnaire.Schema
	rdb    *redis.Client
	log    zerolog.Logger
}

// NewSchemaService creates a new SchemaService.
func NewSchemaService(schema *questionnaire.Schema, rdb *redis.Client, log zerolog.Logger) *SchemaService {
	return &SchemaService{schema: schema, rdb: rdb, log: log}
}

// Payload returns the client-facing schema, served from Redis when cached.
// A cache failure degrades to rendering from memory, never to an error.
func (s *SchemaService) Payload(ctx context.Context) *SchemaPayload {
	key := config.CacheKey.SchemaPayloadKey()

	cached, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var payload SchemaPayload
		if err := json.Unmarshal(cached, &payload); err == nil {
			return &payload
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("schema cache read failed")
	}

	payload := s.render()

	if raw, err := json.Marshal(payload); err == nil {
		if err := s.rdb.Set(ctx, key, raw, schemaCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("schema cache write failed")
		}
	}

	return payload
}

// Sections returns the questionnaire grouped by security domain, in the
// order domains first appear in the schema.
func (s *SchemaService) Sections() []SectionView {
	var sections []SectionView
	index := make(map[string]int)

	for _, q := range s.schema.Questions() {
		view := toQuestionView(q)
		i, seen := index[q.Domain]
		if !seen {
			index[q.Domain] = len(sections)
			sections = append(sections, SectionView{Domain: q.Domain})
			i = len(sections) - 1
		}
		sections[i].Questions = append(sections[i].Questions, view)
	}
	return sections
}

func (s *SchemaService) render() *SchemaPayload {
	questions := s.schema.Questions()
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toQuestionView(q))
	}

	return &SchemaPayload{
		Section:        s.schema.Section(),
		Questions:      views,
		TotalQuestions: s.schema.QuestionCount(),
		MaxScore:       s.schema.MaxScore(),
	}
}

func toQuestionView(q questionnaire.Question) QuestionView {
	return QuestionView{
		ID:        q.ID,
		Domain:    q.Domain,
		Text:      q.Text,
		Type:      string(q.Type),
		Options:   q.Options,
		MaxPoints: q.MaxPoints(),
		HelpText:  q.HelpText,
		Required:  q.Required,
	}
}
