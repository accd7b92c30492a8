package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"jobboard/internal/domain"
)

func newApplicationRepoMock(t *testing.T) (ApplicationRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return NewApplicationRepository(db), mock, func() { db.Close() }
}

func applicationRow(id, jobID, applicantID int64, status domain.ApplicationStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "job_id", "applicant_id", "cover_letter", "status", "created_at", "updated_at"}).
		AddRow(id, jobID, applicantID, "", string(status), time.Now(), time.Now())
}

func TestApplicationCreateStartsPending(t *testing.T) {
	repo, mock, done := newApplicationRepoMock(t)
	defer done()

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(int64(5), int64(9), "cover", "pending").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(`FROM applications WHERE id = \? AND is_deleted = 0`).
		WithArgs(int64(11)).
		WillReturnRows(applicationRow(11, 5, 9, domain.StatusPending))

	app, err := repo.Create(5, 9, "cover")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("status = %s, want pending", app.Status)
	}
}

func TestApplicationCreateValidatesIDs(t *testing.T) {
	repo, _, done := newApplicationRepoMock(t)
	defer done()

	if _, err := repo.Create(0, 9, ""); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := repo.Create(5, 0, ""); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestApplicationUpdateStatusGuardsCurrentStatus(t *testing.T) {
	repo, mock, done := newApplicationRepoMock(t)
	defer done()

	mock.ExpectExec(`UPDATE applications SET status = \?, updated_at = NOW\(\) WHERE id = \? AND status = \? AND is_deleted = 0`).
		WithArgs("reviewed", int64(11), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM applications WHERE id = \?`).
		WithArgs(int64(11)).
		WillReturnRows(applicationRow(11, 5, 9, domain.StatusReviewed))

	app, err := repo.UpdateStatus(11, domain.StatusPending, domain.StatusReviewed)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if app.Status != domain.StatusReviewed {
		t.Fatalf("status = %s, want reviewed", app.Status)
	}
}

func TestApplicationUpdateStatusConflictsWhenRowMoved(t *testing.T) {
	repo, mock, done := newApplicationRepoMock(t)
	defer done()

	// another request already transitioned the row; the guarded write misses
	mock.ExpectExec(`UPDATE applications SET status = \?`).
		WithArgs("reviewed", int64(11), "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStatus(11, domain.StatusPending, domain.StatusReviewed)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestApplicationListByJobScopesFilter(t *testing.T) {
	repo, mock, done := newApplicationRepoMock(t)
	defer done()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications WHERE is_deleted = 0 AND job_id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM applications WHERE is_deleted = 0 AND job_id = \? ORDER BY created_at ASC LIMIT \? OFFSET \?`).
		WithArgs(int64(5), 20, 0).
		WillReturnRows(applicationRow(11, 5, 9, domain.StatusPending))

	items, total, err := repo.ListByJob(5, domain.PageRequest{Page: 1, Limit: 20, SortField: "created_at", SortOrder: domain.SortAsc})
	if err != nil {
		t.Fatalf("ListByJob returned error: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].JobID != 5 {
		t.Fatalf("unexpected page: total=%d items=%+v", total, items)
	}
}

func TestApplicationStatusFieldIsNotDirectlyWritable(t *testing.T) {
	repo, _, done := newApplicationRepoMock(t)
	defer done()

	_, err := repo.Update(11, map[string]any{"status": "accepted"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
