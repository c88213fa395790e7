package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResponseRepository handles per-question answer persistence.
type ResponseRepository struct {
	pool *pgxpool.Pool
}

// NewResponseRepository creates a new ResponseRepository.
func NewResponseRepository(pool *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{pool: pool}
}

// SaveBatch upserts a batch of answers for one assessment in a single
// round trip using UNNEST. Re-saving a question overwrites the previous
// answer.
func (r *ResponseRepository) SaveBatch(ctx context.Context, assessmentID uuid.UUID, payloads []model.QuestionResponsePayload) error {
	n := len(payloads)
	if n == 0 {
		return nil
	}

	questionIDs := make([]string, 0, n)
	answers := make([]string, 0, n)
	comments := make([]string, 0, n)

	for _, p := range payloads {
		questionIDs = append(questionIDs, p.QuestionID)
		answers = append(answers, string(p.Answer))
		comments = append(comments, p.Comment)
	}

	query := `
		INSERT INTO responses (assessment_id, question_id, answer, comment, updated_at)
		SELECT $1, u.question_id, u.answer::jsonb, u.comment, NOW()
		FROM UNNEST(
			$2::text[],
			$3::text[],
			$4::text[]
		) AS u (question_id, answer, comment)
		ON CONFLICT (assessment_id, question_id)
		DO UPDATE SET answer = EXCLUDED.answer,
		              comment = EXCLUDED.comment,
		              updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query, assessmentID, questionIDs, answers, comments)
	return err
}

// ListByAssessment retrieves all saved answers for an assessment.
func (r *ResponseRepository) ListByAssessment(ctx context.Context, assessmentID uuid.UUID) ([]model.ResponseRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT assessment_id, question_id, answer, comment, updated_at
		 FROM responses
		 WHERE assessment_id = $1
		 ORDER BY question_id`, assessmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ResponseRecord
	for rows.Next() {
		var rec model.ResponseRecord
		if err := rows.Scan(&rec.AssessmentID, &rec.QuestionID, &rec.Answer, &rec.Comment, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AnswerMap returns the saved answers as a question_id keyed map, decoded
// into the shape the scoring engine consumes.
func (r *ResponseRepository) AnswerMap(ctx context.Context, assessmentID uuid.UUID) (map[string]any, error) {
	records, err := r.ListByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	answers := make(map[string]any, len(records))
	for _, rec := range records {
		var v any
		if err := json.Unmarshal(rec.Answer, &v); err != nil {
			continue
		}
		answers[rec.QuestionID] = v
	}
	return answers, nil
}
