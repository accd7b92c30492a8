package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"jobboard/internal/config"
	intdb "jobboard/internal/db"
	"jobboard/internal/domain"
	"jobboard/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return UserRepository{DB: db}
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const userSelect = `SELECT id, name, username, email, password_hash, role, status, created_at, updated_at FROM users`

func scanUser(scan func(dest ...any) error) (models.User, error) {
	var u models.User
	err := scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(userSelect+` WHERE id = ? LIMIT 1`, id)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, domain.StoreError{Op: "get users", Err: err}
	}
	return u, nil
}

// GetByLogin resolves a user by email or username, the way the login form
// sends it.
func (r UserRepository) GetByLogin(login string) (models.User, error) {
	login = strings.TrimSpace(login)
	row := r.db().QueryRow(userSelect+` WHERE email = ? OR username = ? LIMIT 1`, login, login)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, domain.StoreError{Op: "get users", Err: err}
	}
	return u, nil
}

// Create inserts a user with the default role. Duplicate email/username maps
// to a conflict via the unique indexes.
func (r UserRepository) Create(name, username, email, passwordHash string) (models.User, error) {
	res, err := r.db().Exec(
		`INSERT INTO users (name, username, email, password_hash, role, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 'user', 'active', NOW(), NOW())`,
		name, username, email, passwordHash,
	)
	if err != nil {
		if intdb.IsDuplicate(err) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered", Err: err}
		}
		return models.User{}, domain.StoreError{Op: "insert users", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.StoreError{Op: "insert users", Err: err}
	}
	return r.GetByID(id)
}
