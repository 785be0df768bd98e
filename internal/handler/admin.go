package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-rental-api/internal/repository"
	"github.com/iliyamo/movie-rental-api/internal/utils"
)

// AdminHandler bundles dependencies for the admin-only catalog
// management endpoints plus admin elevation (which itself is public:
// it is the only way a token is ever issued).
type AdminHandler struct {
	Users   UserStore
	Movies  MovieStore
	Rentals RentalStore
}

func NewAdminHandler(u UserStore, m MovieStore, r RentalStore) *AdminHandler {
	return &AdminHandler{Users: u, Movies: m, Rentals: r}
}

// ----- DTOs -----

type addUserReq struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type addMovieReq struct {
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Year     int     `json:"year"`
	Synopsis *string `json:"synopsis"`
	Director *string `json:"director"`
}

type createAdminReq struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// AddUser handles POST /add_user.
func (h *AdminHandler) AddUser(c echo.Context) error {
	var req addUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed", "message": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "user added successfully", "id": id})
}

// AddMovie handles POST /add_movie.
func (h *AdminHandler) AddMovie(c echo.Context) error {
	var req addMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Genre = strings.TrimSpace(req.Genre)
	if req.Title == "" || req.Genre == "" || req.Year == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, genre and year are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Movies.Create(ctx, req.Title, req.Genre, req.Year, req.Synopsis, req.Director)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create movie failed", "message": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "movie added successfully", "id": id})
}

// ClearDatabase handles POST /clear_database: rentals first, then
// movies, then users, so the foreign keys never get in the way.
func (h *AdminHandler) ClearDatabase(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Rentals.DeleteAll(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "database cleared successfully"})
}

// seed data for PopulateDatabase.
var seedUsers = []addUserReq{
	{Name: "John Smith", Email: "john@example.com", Phone: strPtr("123456789")},
	{Name: "Mary Johnson", Email: "mary@example.com", Phone: strPtr("987654321")},
	{Name: "Joseph Brown", Email: "joseph@example.com", Phone: strPtr("456789123")},
	{Name: "Anna Davis", Email: "anna@example.com", Phone: strPtr("654321987")},
	{Name: "Carl Wilson", Email: "carl@example.com", Phone: strPtr("321654987")},
}

var seedMovies = []addMovieReq{
	{Title: "The Godfather", Genre: "Drama", Year: 1972, Synopsis: strPtr("The story of the Corleone family"), Director: strPtr("Francis Ford Coppola")},
	{Title: "The Matrix", Genre: "Science Fiction", Year: 1999, Synopsis: strPtr("A hacker discovers the truth about his reality"), Director: strPtr("Lana and Lilly Wachowski")},
	{Title: "Titanic", Genre: "Romance", Year: 1997, Synopsis: strPtr("The impossible love between Jack and Rose"), Director: strPtr("James Cameron")},
	{Title: "Ghostbusters", Genre: "Comedy", Year: 1984, Synopsis: strPtr("A ghost-hunting crew saves New York from ghosts"), Director: strPtr("Ivan Reitman")},
	{Title: "Pulp Fiction", Genre: "Crime", Year: 1994, Synopsis: strPtr("Several stories intertwine in Los Angeles"), Director: strPtr("Quentin Tarantino")},
}

func strPtr(s string) *string { return &s }

// PopulateDatabase handles POST /populate_database: wipe everything
// and load the sample users and movies.
func (h *AdminHandler) PopulateDatabase(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if err := h.Rentals.DeleteAll(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed", "message": err.Error()})
	}
	for _, u := range seedUsers {
		if _, err := h.Users.Create(ctx, u.Name, u.Email, u.Phone); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed users failed", "message": err.Error()})
		}
	}
	for _, m := range seedMovies {
		if _, err := h.Movies.Create(ctx, m.Title, m.Genre, m.Year, m.Synopsis, m.Director); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed movies failed", "message": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "database populated with sample data"})
}

// CreateAdmin handles POST /create_admin: promote an existing user
// (found by email) or create a new admin user, issuing a fresh token
// either way. A user that is already an admin gets a 400, not a new
// token; regenerating lost tokens is out of scope.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, err := utils.NewAdminToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed", "message": err.Error()})
	}

	u, err := h.Users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if u.IsAdmin {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user is already an administrator"})
		}
		if err := h.Users.Promote(ctx, u.ID, token); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "promote failed", "message": err.Error()})
		}
	case errors.Is(err, repository.ErrUserNotFound):
		if req.Name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required for a new admin"})
		}
		if _, err := h.Users.CreateAdmin(ctx, req.Name, req.Email, req.Phone, token); err != nil {
			if errors.Is(err, repository.ErrEmailExists) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed", "message": err.Error()})
		}
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed", "message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "administrator created successfully", "admin_token": token})
}
