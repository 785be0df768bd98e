package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-rental-api/internal/model"
)

type RentalRepo struct{ DB *sql.DB }

func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{DB: db} }

// Create inserts a rental for the pair with rental_date = now and no
// rating. Duplicates are allowed: renting the same movie again makes
// a fresh row.
func (r *RentalRepo) Create(ctx context.Context, userID, movieID uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO rentals (user_id, movie_id) VALUES (?,?)",
		userID, movieID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Rate sets the rating on the most recent rental of the (user, movie)
// pair and recomputes the movie's aggregate rating columns from all
// rated rentals of that movie. Rental update and aggregate update
// commit in one transaction, so a rate either fully lands or not at
// all. Concurrent raters of the same movie can still interleave the
// COUNT/AVG read with each other's commits; the last recompute wins.
func (r *RentalRepo) Rate(ctx context.Context, userID, movieID uint64, rating float64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var rentalID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM rentals WHERE user_id=? AND movie_id=? ORDER BY rental_date DESC, id DESC LIMIT 1",
		userID, movieID).Scan(&rentalID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRentalNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE rentals SET rating=? WHERE id=?",
		rating, rentalID); err != nil {
		return err
	}

	var total int
	var grade sql.NullFloat64
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(rating), AVG(rating) FROM rentals WHERE movie_id=? AND rating IS NOT NULL",
		movieID).Scan(&total, &grade); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE movies SET total_ratings=?, final_grade=? WHERE id=?",
		total, grade, movieID); err != nil {
		return err
	}

	return tx.Commit()
}

// ListByUser returns the user's rentals newest first, with the movie
// title joined in.
func (r *RentalRepo) ListByUser(ctx context.Context, userID uint64) ([]model.UserRental, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT r.id, m.title, r.rental_date, r.rating
		 FROM rentals r
		 JOIN movies m ON m.id = r.movie_id
		 WHERE r.user_id=?
		 ORDER BY r.rental_date DESC, r.id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.UserRental{}
	for rows.Next() {
		var ur model.UserRental
		if err := rows.Scan(&ur.ID, &ur.MovieTitle, &ur.RentalDate, &ur.Rating); err != nil {
			return nil, err
		}
		out = append(out, ur)
	}
	return out, rows.Err()
}

// DeleteAll wipes every table, rentals first so the foreign keys
// never block the parent deletes.
func (r *RentalRepo) DeleteAll(ctx context.Context) error {
	for _, stmt := range []string{
		"DELETE FROM rentals",
		"DELETE FROM movies",
		"DELETE FROM users",
	} {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
