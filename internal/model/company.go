package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is an organization taking the assessment.
type Company struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"company_name"`
	Industry        string    `json:"industry"`
	Size            string    `json:"company_size"`
	Region          string    `json:"region"`
	ContactEmail    string    `json:"contact_email"`
	ContactName     string    `json:"contact_name,omitempty"`
	AdditionalNotes string    `json:"additional_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCompanyRequest is the payload for registering a company and opening
// a new assessment.
type CreateCompanyRequest struct {
	Name            string `json:"company_name" binding:"required,min=1,max=200"`
	Industry        string `json:"industry" binding:"required,max=100"`
	Size            string `json:"company_size" binding:"required,max=50"`
	Region          string `json:"region" binding:"required,max=100"`
	ContactEmail    string `json:"contact_email" binding:"required,email"`
	ContactName     string `json:"contact_name" binding:"max=200"`
	AdditionalNotes string `json:"additional_notes" binding:"max=2000"`
}
