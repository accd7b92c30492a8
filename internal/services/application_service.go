package services

import (
	"fmt"

	"jobboard/internal/domain"
	"jobboard/internal/domain/models"
	"jobboard/internal/repositories"
	"jobboard/internal/utils"
)

// ApplicationService drives the application lifecycle. It is the only code
// path that changes an application's status, so the state machine check always
// runs before anything is persisted.
type ApplicationService struct {
	Repo      repositories.ApplicationRepository
	JobRepo   repositories.JobRepository
	RequestID string
}

// Apply creates a pending application after confirming the job is live.
func (s ApplicationService) Apply(jobID, applicantID int64, coverLetter string) (models.Application, error) {
	if _, err := s.JobRepo.GetByID(jobID); err != nil {
		return models.Application{}, err
	}
	utils.LogEvent(s.RequestID, "application", "apply", fmt.Sprintf("job_id=%d applicant_id=%d", jobID, applicantID))
	return s.Repo.Create(jobID, applicantID, coverLetter)
}

// Transition moves an application to target if the state machine allows it.
// On an illegal transition nothing is written and the record keeps its
// current status.
func (s ApplicationService) Transition(id int64, target domain.ApplicationStatus) (models.Application, error) {
	app, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Application{}, err
	}
	if err := domain.CheckTransition(app.Status, target); err != nil {
		return models.Application{}, err
	}
	utils.LogEvent(s.RequestID, "application", "transition", fmt.Sprintf("id=%d from=%s to=%s", id, app.Status, target))
	return s.Repo.UpdateStatus(id, app.Status, target)
}

// Withdraw soft-deletes an application owned by applicantID. False when it is
// already gone.
func (s ApplicationService) Withdraw(id, applicantID int64) (bool, error) {
	app, err := s.Repo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if app.ApplicantID != applicantID {
		return false, domain.NotFoundError{Resource: "application"}
	}
	utils.LogEvent(s.RequestID, "application", "withdraw", fmt.Sprintf("id=%d", id))
	return s.Repo.SoftDelete(id)
}
