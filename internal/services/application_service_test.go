package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"jobboard/internal/domain"
	"jobboard/internal/repositories"
)

func newApplicationServiceMock(t *testing.T) (ApplicationService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ApplicationService{
		Repo:    repositories.NewApplicationRepository(db),
		JobRepo: repositories.NewJobRepository(db),
	}
	return svc, mock, func() { db.Close() }
}

func applicationServiceRow(id int64, status domain.ApplicationStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "job_id", "applicant_id", "cover_letter", "status", "created_at", "updated_at"}).
		AddRow(id, int64(5), int64(9), "", string(status), time.Now(), time.Now())
}

func TestTransitionPendingToReviewed(t *testing.T) {
	svc, mock, done := newApplicationServiceMock(t)
	defer done()

	mock.ExpectQuery(`FROM applications WHERE id = \? AND is_deleted = 0`).
		WithArgs(int64(11)).
		WillReturnRows(applicationServiceRow(11, domain.StatusPending))
	mock.ExpectExec(`UPDATE applications SET status = \?`).
		WithArgs("reviewed", int64(11), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM applications WHERE id = \?`).
		WithArgs(int64(11)).
		WillReturnRows(applicationServiceRow(11, domain.StatusReviewed))

	app, err := svc.Transition(11, domain.StatusReviewed)
	if err != nil {
		t.Fatalf("Transition returned error: %v", err)
	}
	if app.Status != domain.StatusReviewed {
		t.Fatalf("status = %s, want reviewed", app.Status)
	}
}

func TestTransitionPendingToAcceptedRejectedWithoutWrite(t *testing.T) {
	svc, mock, done := newApplicationServiceMock(t)
	defer done()

	// read only; no UPDATE expectation — an attempted write fails the test
	mock.ExpectQuery(`FROM applications WHERE id = \?`).
		WithArgs(int64(11)).
		WillReturnRows(applicationServiceRow(11, domain.StatusPending))

	_, err := svc.Transition(11, domain.StatusAccepted)
	if !domain.IsInvalidTransition(err) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store calls: %v", err)
	}
}

func TestTransitionMissingApplication(t *testing.T) {
	svc, mock, done := newApplicationServiceMock(t)
	defer done()

	mock.ExpectQuery(`FROM applications WHERE id = \?`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "applicant_id", "cover_letter", "status", "created_at", "updated_at"}))

	_, err := svc.Transition(404, domain.StatusReviewed)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestApplyChecksJobExists(t *testing.T) {
	svc, mock, done := newApplicationServiceMock(t)
	defer done()

	mock.ExpectQuery(`FROM jobs WHERE id = \? AND is_deleted = 0`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Apply(5, 9, "")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for deleted job, got %v", err)
	}
}

func TestWithdrawRefusesForeignApplication(t *testing.T) {
	svc, mock, done := newApplicationServiceMock(t)
	defer done()

	mock.ExpectQuery(`FROM applications WHERE id = \?`).
		WithArgs(int64(11)).
		WillReturnRows(applicationServiceRow(11, domain.StatusPending))

	_, err := svc.Withdraw(11, 999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for foreign application, got %v", err)
	}
}
