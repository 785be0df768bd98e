package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/movie-rental-api/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,name,phone,email,is_admin,admin_token"

// Create inserts a user and returns its ID. Emails are normalized to
// lower case so the unique index catches case-variant duplicates.
func (r *UserRepo) Create(ctx context.Context, name, email string, phone *string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, phone) VALUES (?,?,?)",
		name, email, phone)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// CreateAdmin inserts a user that is an administrator from the start,
// together with its freshly generated token.
func (r *UserRepo) CreateAdmin(ctx context.Context, name, email string, phone *string, token string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, phone, is_admin, admin_token) VALUES (?,?,?,TRUE,?)",
		name, email, phone, token)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.IsAdmin, &u.AdminToken)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.IsAdmin, &u.AdminToken)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

// GetByAdminToken fetches the user holding the given admin token. The
// token column has a unique index, so at most one row can match. This
// is the lookup behind the authorization gate.
func (r *UserRepo) GetByAdminToken(ctx context.Context, token string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE admin_token=? LIMIT 1",
		token).Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.IsAdmin, &u.AdminToken)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

// Promote marks an existing user as admin and stores the new token.
// A token collision trips the unique index and surfaces as a plain
// store error; generation does not retry.
func (r *UserRepo) Promote(ctx context.Context, id uint64, token string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_admin=TRUE, admin_token=? WHERE id=?",
		token, id)
	return err
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userCols+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.IsAdmin, &u.AdminToken); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
