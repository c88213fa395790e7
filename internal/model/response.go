package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ResponseRecord is a persisted answer to one question. The answer is kept
// as raw JSON because multi-select answers are arrays while single-select
// and text answers are strings.
type ResponseRecord struct {
	AssessmentID uuid.UUID       `json:"assessment_id"`
	QuestionID   string          `json:"question_id"`
	Answer       json.RawMessage `json:"answer"`
	Comment      string          `json:"comment,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// QuestionResponsePayload is a single answer in a save-responses call.
type QuestionResponsePayload struct {
	QuestionID string          `json:"question_id" binding:"required,max=100"`
	Answer     json.RawMessage `json:"answer" binding:"required"`
	Comment    string          `json:"comment" binding:"max=2000"`
}

// SaveResponsesRequest is the payload for incrementally saving answers
// before final submission.
type SaveResponsesRequest struct {
	Responses []QuestionResponsePayload `json:"responses" binding:"required,min=1,dive"`
}
