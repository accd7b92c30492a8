package models

import (
	"time"

	"jobboard/internal/domain"
)

// Application is a user's application to a job. Status starts at pending and
// only moves through the transitions the state machine allows; it is never
// written directly from request payloads.
type Application struct {
	ID          int64                    `json:"id"`
	JobID       int64                    `json:"job_id"`
	ApplicantID int64                    `json:"applicant_id"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}
