package repositories

import (
	"database/sql"
	"errors"

	"jobboard/internal/config"
	intdb "jobboard/internal/db"
	"jobboard/internal/domain"
	"jobboard/internal/domain/models"
)

// SavedBlogRepository governs the user-saved-blog relation. Saves are
// idempotent create-or-fetch; removals are physical deletes — a toggle, not an
// audit trail, so there is no soft-delete state to filter.
type SavedBlogRepository struct {
	DB *sql.DB
}

func NewSavedBlogRepository(db *sql.DB) SavedBlogRepository {
	return SavedBlogRepository{DB: db}
}

func (r SavedBlogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const savedBlogSelect = `SELECT id, user_id, blog_id, created_at FROM saved_blogs`

func scanSavedBlog(scan func(dest ...any) error) (models.SavedBlog, error) {
	var sb models.SavedBlog
	err := scan(&sb.ID, &sb.UserID, &sb.BlogID, &sb.CreatedAt)
	return sb, err
}

// Save returns the existing relation for the pair when there is one, and
// creates it otherwise. Calling it twice never produces two rows. The check
// and the insert are separate statements, so two concurrent saves can race;
// a duplicate-key error from the unique pair index is folded back into a
// fetch of the winning row.
func (r SavedBlogRepository) Save(ownerID, targetID int64) (models.SavedBlog, error) {
	if ownerID <= 0 || targetID <= 0 {
		return models.SavedBlog{}, domain.ValidationError{Field: "id", Msg: "owner and blog ids must be positive"}
	}

	existing, err := r.getByPair(ownerID, targetID)
	if err == nil {
		return existing, nil
	}
	if !domain.IsNotFound(err) {
		return models.SavedBlog{}, err
	}

	res, err := r.db().Exec(
		`INSERT INTO saved_blogs (user_id, blog_id, created_at) VALUES (?, ?, NOW())`,
		ownerID, targetID,
	)
	if err != nil {
		if intdb.IsDuplicate(err) {
			return r.getByPair(ownerID, targetID)
		}
		return models.SavedBlog{}, domain.StoreError{Op: "insert saved_blogs", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.SavedBlog{}, domain.StoreError{Op: "insert saved_blogs", Err: err}
	}
	return r.getByID(id)
}

// RemoveByTarget hard-deletes the relation for the pair. False when nothing
// existed; the delete itself is atomic, so of two concurrent removals at most
// one observes an affected row.
func (r SavedBlogRepository) RemoveByTarget(ownerID, targetID int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM saved_blogs WHERE user_id = ? AND blog_id = ?`, ownerID, targetID)
	if err != nil {
		return false, domain.StoreError{Op: "delete saved_blogs", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, domain.StoreError{Op: "delete saved_blogs", Err: err}
	}
	return affected > 0, nil
}

// Exists is a pure probe with no side effect.
func (r SavedBlogRepository) Exists(ownerID, targetID int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM saved_blogs WHERE user_id = ? AND blog_id = ? LIMIT 1`, ownerID, targetID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.StoreError{Op: "probe saved_blogs", Err: err}
	}
	return true, nil
}

// List pages through one owner's saved blogs, newest first by default. Same
// pagination contract as the entity repository, minus the soft-delete filter.
func (r SavedBlogRepository) List(ownerID int64, p domain.PageRequest) ([]models.SavedBlog, int, error) {
	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM saved_blogs WHERE user_id = ?`, ownerID).Scan(&total); err != nil {
		return nil, 0, domain.StoreError{Op: "count saved_blogs", Err: err}
	}

	orderCol := "created_at"
	if p.SortField == "id" {
		orderCol = "id"
	}
	dir := domain.SortAsc
	if p.SortOrder == domain.SortDesc {
		dir = domain.SortDesc
	}

	rows, err := r.db().Query(
		savedBlogSelect+` WHERE user_id = ? ORDER BY `+orderCol+` `+dir+` LIMIT ? OFFSET ?`,
		ownerID, p.Limit, p.Offset(),
	)
	if err != nil {
		return nil, 0, domain.StoreError{Op: "list saved_blogs", Err: err}
	}
	defer rows.Close()

	items := []models.SavedBlog{}
	for rows.Next() {
		sb, err := scanSavedBlog(rows.Scan)
		if err != nil {
			return nil, 0, domain.StoreError{Op: "scan saved_blogs", Err: err}
		}
		items = append(items, sb)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.StoreError{Op: "iterate saved_blogs", Err: err}
	}
	return items, total, nil
}

func (r SavedBlogRepository) getByPair(ownerID, targetID int64) (models.SavedBlog, error) {
	row := r.db().QueryRow(savedBlogSelect+` WHERE user_id = ? AND blog_id = ? LIMIT 1`, ownerID, targetID)
	sb, err := scanSavedBlog(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedBlog{}, domain.NotFoundError{Resource: "saved blog", Err: err}
	}
	if err != nil {
		return models.SavedBlog{}, domain.StoreError{Op: "get saved_blogs", Err: err}
	}
	return sb, nil
}

func (r SavedBlogRepository) getByID(id int64) (models.SavedBlog, error) {
	row := r.db().QueryRow(savedBlogSelect+` WHERE id = ? LIMIT 1`, id)
	sb, err := scanSavedBlog(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedBlog{}, domain.NotFoundError{Resource: "saved blog", Err: err}
	}
	if err != nil {
		return models.SavedBlog{}, domain.StoreError{Op: "get saved_blogs", Err: err}
	}
	return sb, nil
}
