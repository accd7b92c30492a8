package repositories

import (
	"database/sql"

	"jobboard/internal/domain"
	"jobboard/internal/domain/models"
)

// ApplicationRepository stores job applications. Status is not in the mutable
// allow-list: it starts at pending on create and only changes through
// UpdateStatus, which the application service calls after the state machine
// has approved the transition.
type ApplicationRepository struct {
	EntityRepository[models.Application]
}

func NewApplicationRepository(db *sql.DB) ApplicationRepository {
	return ApplicationRepository{EntityRepository[models.Application]{DB: db, Desc: EntityDescriptor[models.Application]{
		Resource: "application",
		Table:    "applications",
		Columns: []string{
			"id", "job_id", "applicant_id", "COALESCE(cover_letter, '')",
			"status", "created_at", "updated_at",
		},
		ScanRow: func(scan func(dest ...any) error) (models.Application, error) {
			var a models.Application
			err := scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt)
			return a, err
		},
		Mutable: map[string]bool{
			"cover_letter": true,
		},
		Sortable:    map[string]bool{"id": true, "status": true, "created_at": true},
		DefaultSort: "created_at",
	}}}
}

// Create inserts a pending application. job_id and applicant_id are fixed at
// creation and never mutable afterwards.
func (r ApplicationRepository) Create(jobID, applicantID int64, coverLetter string) (models.Application, error) {
	if jobID <= 0 {
		return models.Application{}, domain.ValidationError{Field: "job_id", Msg: "must be positive"}
	}
	if applicantID <= 0 {
		return models.Application{}, domain.ValidationError{Field: "applicant_id", Msg: "must be positive"}
	}

	res, err := r.db().Exec(
		`INSERT INTO applications (job_id, applicant_id, cover_letter, status, is_deleted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, NOW(), NOW())`,
		jobID, applicantID, coverLetter, domain.StatusPending,
	)
	if err != nil {
		return models.Application{}, domain.StoreError{Op: "insert applications", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Application{}, domain.StoreError{Op: "insert applications", Err: err}
	}
	return r.GetByID(id)
}

// UpdateStatus persists an approved transition. The WHERE clause repeats the
// expected current status so a concurrent transition loses cleanly instead of
// overwriting; zero affected rows surfaces as a conflict.
func (r ApplicationRepository) UpdateStatus(id int64, from, to domain.ApplicationStatus) (models.Application, error) {
	res, err := r.db().Exec(
		`UPDATE applications SET status = ?, updated_at = NOW() WHERE id = ? AND status = ? AND is_deleted = 0`,
		to, id, from,
	)
	if err != nil {
		return models.Application{}, domain.StoreError{Op: "update applications", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Application{}, domain.StoreError{Op: "update applications", Err: err}
	}
	if affected == 0 {
		return models.Application{}, domain.ConflictError{Resource: "application", Msg: "status changed concurrently"}
	}
	return r.GetByID(id)
}

// ListByJob pages through non-deleted applications for one job.
func (r ApplicationRepository) ListByJob(jobID int64, p domain.PageRequest) ([]models.Application, int, error) {
	return r.listWhere(p, "AND job_id = ?", []any{jobID})
}

// ListByApplicant pages through one user's non-deleted applications.
func (r ApplicationRepository) ListByApplicant(applicantID int64, p domain.PageRequest) ([]models.Application, int, error) {
	return r.listWhere(p, "AND applicant_id = ?", []any{applicantID})
}
