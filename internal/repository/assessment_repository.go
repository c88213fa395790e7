package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssessmentRepository handles assessment data access.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new AssessmentRepository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

// Create opens a new IN_PROGRESS assessment for a company.
func (r *AssessmentRepository) Create(ctx context.Context, a *model.Assessment) error {
	a.Status = model.AssessmentStatusInProgress
	return r.pool.QueryRow(ctx,
		`INSERT INTO assessments (company_id, status)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		a.CompanyID, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
}

// GetByID retrieves an assessment by its ID.
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Assessment, error) {
	a := &model.Assessment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, company_id, status, total_score, max_score, percentage,
		        maturity_level, maturity_label, result, created_at, completed_at
		 FROM assessments
		 WHERE id = $1`, id,
	).Scan(&a.ID, &a.CompanyID, &a.Status, &a.TotalScore, &a.MaxScore, &a.Percentage,
		&a.MaturityLevel, &a.MaturityLabel, &a.Result, &a.CreatedAt, &a.CompletedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Complete marks an assessment as COMPLETED and stores the scored result
// along with its denormalized headline figures.
func (r *AssessmentRepository) Complete(ctx context.Context, id uuid.UUID, totalScore, maxScore int, percentage float64, maturityLevel int, maturityLabel string, result json.RawMessage) (time.Time, error) {
	var completedAt time.Time
	err := r.pool.QueryRow(ctx,
		`UPDATE assessments
		 SET status = $1, total_score = $2, max_score = $3, percentage = $4,
		     maturity_level = $5, maturity_label = $6, result = $7, completed_at = NOW()
		 WHERE id = $8
		 RETURNING completed_at`,
		model.AssessmentStatusCompleted, totalScore, maxScore, percentage,
		maturityLevel, maturityLabel, result, id,
	).Scan(&completedAt)
	return completedAt, err
}

// List retrieves assessments joined with their company, newest first,
// with pagination. completedOnly restricts to submitted assessments.
func (r *AssessmentRepository) List(ctx context.Context, page, perPage int, completedOnly bool) ([]model.AssessmentListItem, int64, error) {
	offset := (page - 1) * perPage

	baseQuery := `
		FROM assessments a
		JOIN companies c ON a.company_id = c.id
	`
	args := []any{}
	if completedOnly {
		baseQuery += ` WHERE a.status = $1`
		args = append(args, model.AssessmentStatusCompleted)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) `+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, perPage, offset)
	query := fmt.Sprintf(
		`SELECT a.id, a.company_id, a.status, a.total_score, a.max_score, a.percentage,
		        a.maturity_level, a.maturity_label, a.created_at, a.completed_at,
		        c.name, c.industry, c.region, c.contact_email
		%s
		 ORDER BY a.created_at DESC
		 LIMIT $%d OFFSET $%d`, baseQuery, len(args)-1, len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.AssessmentListItem
	for rows.Next() {
		var it model.AssessmentListItem
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.Status, &it.TotalScore, &it.MaxScore,
			&it.Percentage, &it.MaturityLevel, &it.MaturityLabel, &it.CreatedAt, &it.CompletedAt,
			&it.CompanyName, &it.Industry, &it.Region, &it.ContactEmail); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}

// Stats aggregates headline figures across all assessments.
func (r *AssessmentRepository) Stats(ctx context.Context) (*model.Stats, error) {
	s := &model.Stats{LevelDistribution: make(map[int]int)}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = $1),
		        COALESCE(AVG(percentage) FILTER (WHERE status = $1), 0)
		 FROM assessments`,
		model.AssessmentStatusCompleted,
	).Scan(&s.TotalAssessments, &s.CompletedAssessments, &s.AveragePercentage)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT maturity_level, COUNT(*)
		 FROM assessments
		 WHERE status = $1 AND maturity_level IS NOT NULL
		 GROUP BY maturity_level`,
		model.AssessmentStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		s.LevelDistribution[level] = count
	}
	return s, rows.Err()
}
