package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"jobboard/internal/domain"
)

func newSavedBlogRepoMock(t *testing.T) (SavedBlogRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return SavedBlogRepository{DB: db}, mock, func() { db.Close() }
}

func savedBlogRow(id, userID, blogID int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "blog_id", "created_at"}).
		AddRow(id, userID, blogID, time.Now())
}

func TestSavedBlogSaveCreatesWhenMissing(t *testing.T) {
	repo, mock, done := newSavedBlogRepoMock(t)
	defer done()

	mock.ExpectQuery(`SELECT id, user_id, blog_id, created_at FROM saved_blogs WHERE user_id = \? AND blog_id = \?`).
		WithArgs(int64(1), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "blog_id", "created_at"}))
	mock.ExpectExec(`INSERT INTO saved_blogs \(user_id, blog_id, created_at\) VALUES \(\?, \?, NOW\(\)\)`).
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(`SELECT id, user_id, blog_id, created_at FROM saved_blogs WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(savedBlogRow(3, 1, 9))

	sb, err := repo.Save(1, 9)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if sb.ID != 3 {
		t.Fatalf("relation id = %d, want 3", sb.ID)
	}
}

func TestSavedBlogSaveIsIdempotent(t *testing.T) {
	repo, mock, done := newSavedBlogRepoMock(t)
	defer done()

	// second call finds the existing pair and performs no insert
	mock.ExpectQuery(`FROM saved_blogs WHERE user_id = \? AND blog_id = \?`).
		WithArgs(int64(1), int64(9)).
		WillReturnRows(savedBlogRow(3, 1, 9))

	sb, err := repo.Save(1, 9)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if sb.ID != 3 {
		t.Fatalf("relation id = %d, want 3", sb.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store calls: %v", err)
	}
}

func TestSavedBlogSaveRecoversFromDuplicateKeyRace(t *testing.T) {
	repo, mock, done := newSavedBlogRepoMock(t)
	defer done()

	mock.ExpectQuery(`FROM saved_blogs WHERE user_id = \? AND blog_id = \?`).
		WithArgs(int64(1), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "blog_id", "created_at"}))
	mock.ExpectExec(`INSERT INTO saved_blogs`).
		WithArgs(int64(1), int64(9)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})
	mock.ExpectQuery(`FROM saved_blogs WHERE user_id = \? AND blog_id = \?`).
		WithArgs(int64(1), int64(9)).
		WillReturnRows(savedBlogRow(3, 1, 9))

	sb, err := repo.Save(1, 9)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if sb.ID != 3 {
		t.Fatalf("relation id = %d, want 3", sb.ID)
	}
}

func TestSavedBlogSaveRejectsBadIDs(t *testing.T) {
	repo, _, done := newSavedBlogRepoMock(t)
	defer done()

	if _, err := repo.Save(0, 9); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSavedBlogRemoveByTarget(t *testing.T) {
	repo, mock, done := newSavedBlogRepoMock(t)
	defer done()

	mock.ExpectExec(`DELETE FROM saved_blogs WHERE user_id = \? AND blog_id = \?`).
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM saved_blogs`).
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.RemoveByTarget(1, 9)
	if err != nil || !removed {
		t.Fatalf("first remove = (%v, %v), want (true, nil)", removed, err)
	}
	removed, err = repo.RemoveByTarget(1, 9)
	if err != nil || removed {
		t.Fatalf("second remove = (%v, %v), want (false, nil)", removed, err)
	}
}

func TestSavedBlogExists(t *testing.T) {
	repo, mock, done := newSavedBlogRepoMock(t)
	defer done()

	mock.ExpectQuery(`SELECT 1 FROM saved_blogs WHERE user_id = \? AND blog_id = \?`).
		WithArgs(int64(1), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(`SELECT 1 FROM saved_blogs`).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err := repo.Exists(1, 9)
	if err != nil || !ok {
		t.Fatalf("Exists = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = repo.Exists(1, 10)
	if err != nil || ok {
		t.Fatalf("Exists = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestSavedBlogListScopedToOwner(t *testing.T) {
	repo, mock, done := newSavedBlogRepoMock(t)
	defer done()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM saved_blogs WHERE user_id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM saved_blogs WHERE user_id = \? ORDER BY created_at DESC LIMIT \? OFFSET \?`).
		WithArgs(int64(1), 20, 0).
		WillReturnRows(savedBlogRow(3, 1, 9))

	items, total, err := repo.List(1, domain.PageRequest{Page: 1, Limit: 20, SortField: "created_at", SortOrder: domain.SortDesc})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].BlogID != 9 {
		t.Fatalf("unexpected page: total=%d items=%+v", total, items)
	}
}
