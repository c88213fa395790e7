package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultEmailJob is the payload pushed to the result email queue when an
// assessment is submitted. The worker renders and sends the report email.
type ResultEmailJob struct {
	AssessmentID  uuid.UUID `json:"assessment_id"`
	CompanyName   string    `json:"company_name"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	TotalScore    int       `json:"total_score"`
	MaxScore      int       `json:"max_score"`
	Percentage    float64   `json:"percentage"`
	MaturityLevel int       `json:"maturity_level"`
	MaturityLabel string    `json:"maturity_label"`
	Summary       string    `json:"summary"`
	Attempts      int       `json:"attempts"`
}

// SubmissionEvent is broadcast on the live submissions channel for the
// admin dashboard feed.
type SubmissionEvent struct {
	AssessmentID  uuid.UUID `json:"assessment_id"`
	CompanyName   string    `json:"company_name"`
	Industry      string    `json:"industry"`
	Region        string    `json:"region"`
	TotalScore    int       `json:"total_score"`
	MaxScore      int       `json:"max_score"`
	Percentage    float64   `json:"percentage"`
	MaturityLevel int       `json:"maturity_level"`
	MaturityLabel string    `json:"maturity_label"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
