package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/movie-rental-api/internal/model"
)

type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

const movieCols = "id,title,genre,year,synopsis,director,total_ratings,final_grade"

// Create inserts a movie and returns its ID. Aggregate columns start
// at their defaults (0 ratings, NULL grade).
func (r *MovieRepo) Create(ctx context.Context, title, genre string, year int, synopsis, director *string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO movies (title, genre, year, synopsis, director) VALUES (?,?,?,?,?)",
		title, genre, year, synopsis, director)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a movie by id.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	var m model.Movie
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+movieCols+" FROM movies WHERE id=? LIMIT 1",
		id).Scan(&m.ID, &m.Title, &m.Genre, &m.Year, &m.Synopsis, &m.Director, &m.TotalRatings, &m.FinalGrade)
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrMovieNotFound
	}
	return m, err
}

// List returns all movies ordered by id.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+movieCols+" FROM movies ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Year, &m.Synopsis, &m.Director, &m.TotalRatings, &m.FinalGrade); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SearchByGenre returns the movies whose genre contains the given
// fragment, case-insensitively, one page at a time, plus the total
// match count so callers can report page numbers.
func (r *MovieRepo) SearchByGenre(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(genre)) + "%"

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM movies WHERE LOWER(genre) LIKE ?",
		pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := perPage
	offset := (page - 1) * perPage

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+movieCols+" FROM movies WHERE LOWER(genre) LIKE ? ORDER BY id LIMIT ? OFFSET ?",
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0, limit)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Year, &m.Synopsis, &m.Director, &m.TotalRatings, &m.FinalGrade); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
