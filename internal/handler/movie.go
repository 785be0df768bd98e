package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-rental-api/internal/model"
	"github.com/iliyamo/movie-rental-api/internal/repository"
)

// MovieHandler bundles dependencies for the public catalog reads.
type MovieHandler struct {
	Movies MovieStore
}

func NewMovieHandler(m MovieStore) *MovieHandler { return &MovieHandler{Movies: m} }

// ----- response shapes -----

type movieSummary struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
}

type movieSearchRow struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Year     int     `json:"year"`
	Director *string `json:"director"`
}

type movieDetail struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	Genre        string   `json:"genre"`
	Year         int      `json:"year"`
	Synopsis     *string  `json:"synopsis"`
	Director     *string  `json:"director"`
	TotalRatings int      `json:"total_ratings"`
	FinalGrade   *float64 `json:"final_grade"`
}

// List handles GET /movies and returns the whole catalog.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error", "message": err.Error()})
	}
	out := make([]movieSummary, 0, len(movies))
	for _, m := range movies {
		out = append(out, movieSummary{ID: m.ID, Title: m.Title, Genre: m.Genre, Year: m.Year})
	}
	return c.JSON(http.StatusOK, out)
}

// SearchByGenre handles GET /movies/genre with case-insensitive
// substring matching and pagination. An empty result is reported as
// 404 with a message rather than an empty page; debatable API design,
// kept for compatibility with existing clients.
func (h *MovieHandler) SearchByGenre(c echo.Context) error {
	genre := strings.TrimSpace(c.QueryParam("genre"))
	if genre == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "the 'genre' parameter is required"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	movies, total, err := h.Movies.SearchByGenre(c.Request().Context(), genre, page, perPage)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error", "message": err.Error()})
	}
	if len(movies) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": fmt.Sprintf("no movies found for genre %q", genre),
		})
	}

	rows := make([]movieSearchRow, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, movieSearchRow{ID: m.ID, Title: m.Title, Genre: m.Genre, Year: m.Year, Director: m.Director})
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return c.JSON(http.StatusOK, echo.Map{
		"movies":       rows,
		"current_page": page,
		"total_pages":  totalPages,
		"total_movies": total,
	})
}

// Detail handles GET /movies/:id and includes the aggregate rating
// fields maintained by the rate operation.
func (h *MovieHandler) Detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, detailOf(m))
}

func detailOf(m model.Movie) movieDetail {
	return movieDetail{
		ID:           m.ID,
		Title:        m.Title,
		Genre:        m.Genre,
		Year:         m.Year,
		Synopsis:     m.Synopsis,
		Director:     m.Director,
		TotalRatings: m.TotalRatings,
		FinalGrade:   m.FinalGrade,
	}
}
