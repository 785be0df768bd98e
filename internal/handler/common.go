package handler // handler defines http handlers

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-rental-api/internal/model"
)

// The handlers depend on small store interfaces instead of the
// concrete repository types so tests can swap in mocks. The
// repositories in internal/repository satisfy them as-is.

// UserStore is the user persistence surface the handlers need.
type UserStore interface {
	Create(ctx context.Context, name, email string, phone *string) (uint64, error)
	CreateAdmin(ctx context.Context, name, email string, phone *string, token string) (uint64, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Promote(ctx context.Context, id uint64, token string) error
	List(ctx context.Context) ([]model.User, error)
}

// MovieStore is the movie persistence surface the handlers need.
type MovieStore interface {
	Create(ctx context.Context, title, genre string, year int, synopsis, director *string) (uint64, error)
	GetByID(ctx context.Context, id uint64) (model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	SearchByGenre(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error)
}

// RentalStore is the rental persistence surface the handlers need.
type RentalStore interface {
	Create(ctx context.Context, userID, movieID uint64) (uint64, error)
	Rate(ctx context.Context, userID, movieID uint64, rating float64) error
	ListByUser(ctx context.Context, userID uint64) ([]model.UserRental, error)
	DeleteAll(ctx context.Context) error
}

// pathID parses a numeric :id path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
