package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-rental-api/internal/handler"
	"github.com/iliyamo/movie-rental-api/internal/model"
	"github.com/iliyamo/movie-rental-api/internal/repository"
)

func getPath(t *testing.T, h echo.HandlerFunc, target string, pathParam, pathValue string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames(pathParam)
		c.SetParamValues(pathValue)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestMovieList(t *testing.T) {
	movies := &movieStoreMock{listFn: func(ctx context.Context) ([]model.Movie, error) {
		return []model.Movie{
			{ID: 1, Title: "Test Movie 1", Genre: "Action", Year: 2021},
			{ID: 2, Title: "Test Movie 2", Genre: "Comedy", Year: 2022},
		}, nil
	}}
	h := handler.NewMovieHandler(movies)

	rec := getPath(t, h.List, "/movies", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 2 || out[0]["title"] != "Test Movie 1" || out[1]["title"] != "Test Movie 2" {
		t.Fatalf("unexpected list: %v", out)
	}
}

func TestSearchByGenre_MissingParam(t *testing.T) {
	h := handler.NewMovieHandler(&movieStoreMock{})
	rec := getPath(t, h.SearchByGenre, "/movies/genre", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchByGenre_NoMatch(t *testing.T) {
	movies := &movieStoreMock{searchFn: func(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error) {
		return nil, 0, nil
	}}
	h := handler.NewMovieHandler(movies)

	rec := getPath(t, h.SearchByGenre, "/movies/genre?genre=Horror", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if msg, _ := body["message"].(string); msg == "" {
		t.Fatalf("want explanatory message, got %v", body)
	}
}

func TestSearchByGenre_Defaults(t *testing.T) {
	var gotGenre string
	var gotPage, gotPerPage int
	movies := &movieStoreMock{searchFn: func(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error) {
		gotGenre, gotPage, gotPerPage = genre, page, perPage
		return []model.Movie{{ID: 1, Title: "Test Movie 1", Genre: "Comedy", Year: 2022}}, 1, nil
	}}
	h := handler.NewMovieHandler(movies)

	rec := getPath(t, h.SearchByGenre, "/movies/genre?genre=com", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotGenre != "com" || gotPage != 1 || gotPerPage != 10 {
		t.Fatalf("search called with (%q,%d,%d), want (com,1,10)", gotGenre, gotPage, gotPerPage)
	}
}

func TestSearchByGenre_Pagination(t *testing.T) {
	// 22 matching movies, per_page=10, page 2 -> 10 rows, 3 pages total.
	movies := &movieStoreMock{searchFn: func(ctx context.Context, genre string, page, perPage int) ([]model.Movie, int64, error) {
		if page != 2 || perPage != 10 {
			t.Fatalf("search called with page=%d per_page=%d, want 2/10", page, perPage)
		}
		out := make([]model.Movie, 0, perPage)
		for i := 11; i <= 20; i++ {
			out = append(out, model.Movie{ID: uint64(i), Title: fmt.Sprintf("Pagination Movie %d", i), Genre: "Test", Year: 2023})
		}
		return out, 22, nil
	}}
	h := handler.NewMovieHandler(movies)

	rec := getPath(t, h.SearchByGenre, "/movies/genre?genre=Test&page=2&per_page=10", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	rows, _ := body["movies"].([]any)
	if len(rows) != 10 {
		t.Fatalf("got %d movies, want 10", len(rows))
	}
	if body["current_page"] != float64(2) || body["total_pages"] != float64(3) || body["total_movies"] != float64(22) {
		t.Fatalf("pagination meta = page %v / pages %v / total %v, want 2/3/22",
			body["current_page"], body["total_pages"], body["total_movies"])
	}
}

func TestMovieDetail(t *testing.T) {
	grade := 4.5
	syn := "Test synopsis 1"
	movies := &movieStoreMock{getByIDFn: func(ctx context.Context, id uint64) (model.Movie, error) {
		if id == 999 {
			return model.Movie{}, repository.ErrMovieNotFound
		}
		return model.Movie{ID: id, Title: "Test Movie 1", Genre: "Action", Year: 2021,
			Synopsis: &syn, TotalRatings: 1, FinalGrade: &grade}, nil
	}}
	h := handler.NewMovieHandler(movies)

	rec := getPath(t, h.Detail, "/movies/1", "id", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["title"] != "Test Movie 1" || body["final_grade"] != 4.5 || body["total_ratings"] != float64(1) {
		t.Fatalf("unexpected detail: %v", body)
	}

	rec = getPath(t, h.Detail, "/movies/999", "id", "999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
