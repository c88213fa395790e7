package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AssessmentStatus tracks the lifecycle of an assessment.
type AssessmentStatus string

const (
	AssessmentStatusInProgress AssessmentStatus = "IN_PROGRESS"
	AssessmentStatusCompleted  AssessmentStatus = "COMPLETED"
)

// Assessment is one scoring run for a company. The full ScoreResult is
// stored as JSON alongside denormalized headline figures for listing and
// aggregate queries.
type Assessment struct {
	ID            uuid.UUID        `json:"id"`
	CompanyID     uuid.UUID        `json:"company_id"`
	Status        AssessmentStatus `json:"status"`
	TotalScore    *int             `json:"total_score,omitempty"`
	MaxScore      *int             `json:"max_score,omitempty"`
	Percentage    *float64         `json:"percentage,omitempty"`
	MaturityLevel *int             `json:"maturity_level,omitempty"`
	MaturityLabel *string          `json:"maturity_label,omitempty"`
	Result        json.RawMessage  `json:"result,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}

// SubmitAssessmentRequest carries the full response map for scoring.
// The map may be flat ({question_id: answer}) or grouped by section; the
// scoring engine normalizes both shapes.
type SubmitAssessmentRequest struct {
	Responses map[string]any `json:"responses" binding:"required"`
}

// AssessmentListItem is the admin-facing listing row: assessment headline
// data joined with the company it belongs to.
type AssessmentListItem struct {
	Assessment
	CompanyName  string `json:"company_name"`
	Industry     string `json:"industry"`
	Region       string `json:"region"`
	ContactEmail string `json:"contact_email"`
}

// Stats is the aggregate view over all assessments.
type Stats struct {
	TotalCompanies       int         `json:"total_companies"`
	TotalAssessments     int         `json:"total_assessments"`
	CompletedAssessments int         `json:"completed_assessments"`
	AveragePercentage    float64     `json:"average_percentage"`
	LevelDistribution    map[int]int `json:"level_distribution"`
}
