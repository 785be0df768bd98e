package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-rental-api/internal/handler"
	"github.com/iliyamo/movie-rental-api/internal/model"
	"github.com/iliyamo/movie-rental-api/internal/repository"
)

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	return out
}

func TestRent_Created(t *testing.T) {
	users := &userStoreMock{getByIDFn: func(ctx context.Context, id uint64) (model.User, error) {
		if id != 1 {
			t.Fatalf("looked up user %d, want 1", id)
		}
		return model.User{ID: 1, Name: "Test User 1"}, nil
	}}
	movies := &movieStoreMock{getByIDFn: func(ctx context.Context, id uint64) (model.Movie, error) {
		if id != 2 {
			t.Fatalf("looked up movie %d, want 2", id)
		}
		return model.Movie{ID: 2, Title: "Test Movie"}, nil
	}}
	var createdUser, createdMovie uint64
	rentals := &rentalStoreMock{createFn: func(ctx context.Context, userID, movieID uint64) (uint64, error) {
		createdUser, createdMovie = userID, movieID
		return 7, nil
	}}

	h := handler.NewRentalHandler(users, movies, rentals)
	rec := postJSON(t, h.Rent, "/rent", `{"user_id":1,"movie_id":2}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	if createdUser != 1 || createdMovie != 2 {
		t.Fatalf("created rental for (%d,%d), want (1,2)", createdUser, createdMovie)
	}
	body := decodeBody(t, rec)
	if body["id"] != float64(7) {
		t.Fatalf("id = %v, want 7", body["id"])
	}
}

func TestRent_UserOrMovieMissing(t *testing.T) {
	users := &userStoreMock{getByIDFn: func(ctx context.Context, id uint64) (model.User, error) {
		if id == 999 {
			return model.User{}, repository.ErrUserNotFound
		}
		return model.User{ID: id}, nil
	}}
	movies := &movieStoreMock{getByIDFn: func(ctx context.Context, id uint64) (model.Movie, error) {
		if id == 999 {
			return model.Movie{}, repository.ErrMovieNotFound
		}
		return model.Movie{ID: id}, nil
	}}
	rentals := &rentalStoreMock{createFn: func(ctx context.Context, userID, movieID uint64) (uint64, error) {
		t.Fatal("rental must not be created when a side is missing")
		return 0, nil
	}}
	h := handler.NewRentalHandler(users, movies, rentals)

	for _, body := range []string{
		`{"user_id":999,"movie_id":1}`,
		`{"user_id":1,"movie_id":999}`,
	} {
		rec := postJSON(t, h.Rent, "/rent", body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d for %s, want 404", rec.Code, body)
		}
	}
}

func TestRent_ValidationErrors(t *testing.T) {
	h := handler.NewRentalHandler(&userStoreMock{}, &movieStoreMock{}, &rentalStoreMock{})

	cases := []struct {
		name string
		body string
		want string // field expected in details
	}{
		{"non-numeric movie_id", `{"user_id":1,"movie_id":"not_a_number"}`, "movie_id"},
		{"missing user_id", `{"movie_id":1}`, "user_id"},
		{"zero user_id", `{"user_id":0,"movie_id":1}`, "user_id"},
		{"fractional id", `{"user_id":1.5,"movie_id":1}`, "user_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Rent, "/rent", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeBody(t, rec)
			details, _ := body["details"].(map[string]any)
			if _, ok := details[tc.want]; !ok {
				t.Fatalf("details = %v, want message for %q", details, tc.want)
			}
		})
	}
}

func TestRate_SetsRatingAndSucceeds(t *testing.T) {
	var gotUser, gotMovie uint64
	var gotRating float64
	rentals := &rentalStoreMock{rateFn: func(ctx context.Context, userID, movieID uint64, rating float64) error {
		gotUser, gotMovie, gotRating = userID, movieID, rating
		return nil
	}}
	movies := &movieStoreMock{getByIDFn: func(ctx context.Context, id uint64) (model.Movie, error) {
		return model.Movie{ID: id, Title: "Test Movie"}, nil
	}}
	h := handler.NewRentalHandler(&userStoreMock{}, movies, rentals)

	rec := postJSON(t, h.Rate, "/rate", `{"user_id":1,"movie_id":1,"rating":4.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if gotUser != 1 || gotMovie != 1 || gotRating != 4.5 {
		t.Fatalf("rate called with (%d,%d,%v), want (1,1,4.5)", gotUser, gotMovie, gotRating)
	}
}

func TestRate_RentalNotFound(t *testing.T) {
	rentals := &rentalStoreMock{rateFn: func(ctx context.Context, userID, movieID uint64, rating float64) error {
		return repository.ErrRentalNotFound
	}}
	h := handler.NewRentalHandler(&userStoreMock{}, &movieStoreMock{}, rentals)

	rec := postJSON(t, h.Rate, "/rate", `{"user_id":1,"movie_id":1,"rating":4.5}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRate_RatingOutOfRange(t *testing.T) {
	rentals := &rentalStoreMock{rateFn: func(ctx context.Context, userID, movieID uint64, rating float64) error {
		t.Fatalf("rating %v must never reach the store", rating)
		return nil
	}}
	h := handler.NewRentalHandler(&userStoreMock{}, &movieStoreMock{}, rentals)

	for _, body := range []string{
		`{"user_id":1,"movie_id":1,"rating":6}`,
		`{"user_id":1,"movie_id":1,"rating":5.1}`,
		`{"user_id":1,"movie_id":1,"rating":-0.1}`,
		`{"user_id":1,"movie_id":1,"rating":"good"}`,
		`{"user_id":1,"movie_id":1}`,
	} {
		rec := postJSON(t, h.Rate, "/rate", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d for %s, want 400", rec.Code, body)
		}
		details, _ := decodeBody(t, rec)["details"].(map[string]any)
		if _, ok := details["rating"]; !ok {
			t.Fatalf("details = %v, want message for rating", details)
		}
	}
}
