package handler_test

import (
	"context"

	"github.com/iliyamo/movie-rental-api/internal/model"
)

// Hand-written mocks for the store interfaces. Tests set only the
// funcs their scenario touches; an unexpected call panics on the nil
// func and fails the test loudly.

type userStoreMock struct {
	createFn      func(ctx context.Context, name, email string, phone *string) (uint64, error)
	createAdminFn func(ctx context.Context, name, email string, phone *string, token string) (uint64, error)
	getByIDFn     func(ctx context.Context, id uint64) (model.User, error)
	getByEmailFn  func(ctx context.Context, email string) (model.User, error)
	promoteFn     func(ctx context.Context, id uint64, token string) error
	listFn        func(ctx context.Context) ([]model.User, error)
}

func (m *userStoreMock) Create(ctx context.Context, name, email string, phone *string) (uint64, error) {
	return m.createFn(ctx, name, email, phone)
}
func (m *userStoreMock) CreateAdmin(ctx context.Context, name, email string, phone *string, token string) (uint64, error) {
	return m.createAdminFn(ctx, name, email, phone, token)
}
func (m *userStoreMock) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *userStoreMock) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *userStoreMock) Promote(ctx context.Context, id uint64, token string) error {
	return m.promoteFn(ctx, id, token)
}
func (m *userStoreMock) List(ctx context.Context) ([]model.User, error) { return m.listFn(ctx) }

type movieStoreMock struct {
	createFn  func(ctx context.Context, title, genre string, year int, synopsis, director *string) (uint64, error)
	getByIDFn func(ctx context.Context, id uint64) (model.Movie, error)
	listFn    func(ctx context.Context) ([]model.Movie, error)
	searchFn  func(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error)
}

func (m *movieStoreMock) Create(ctx context.Context, title, genre string, year int, synopsis, director *string) (uint64, error) {
	return m.createFn(ctx, title, genre, year, synopsis, director)
}
func (m *movieStoreMock) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	return m.getByIDFn(ctx, id)
}
func (m *movieStoreMock) List(ctx context.Context) ([]model.Movie, error) { return m.listFn(ctx) }
func (m *movieStoreMock) SearchByGenre(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error) {
	return m.searchFn(ctx, genre, page, perPage)
}

type rentalStoreMock struct {
	createFn     func(ctx context.Context, userID, movieID uint64) (uint64, error)
	rateFn       func(ctx context.Context, userID, movieID uint64, rating float64) error
	listByUserFn func(ctx context.Context, userID uint64) ([]model.UserRental, error)
	deleteAllFn  func(ctx context.Context) error
}

func (m *rentalStoreMock) Create(ctx context.Context, userID, movieID uint64) (uint64, error) {
	return m.createFn(ctx, userID, movieID)
}
func (m *rentalStoreMock) Rate(ctx context.Context, userID, movieID uint64, rating float64) error {
	return m.rateFn(ctx, userID, movieID, rating)
}
func (m *rentalStoreMock) ListByUser(ctx context.Context, userID uint64) ([]model.UserRental, error) {
	return m.listByUserFn(ctx, userID)
}
func (m *rentalStoreMock) DeleteAll(ctx context.Context) error { return m.deleteAllFn(ctx) }
