package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel error comparison
	"net/http" // HTTP status codes and primitives
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/movie-rental-api/internal/queue"
	"github.com/iliyamo/movie-rental-api/internal/repository"
	"github.com/iliyamo/movie-rental-api/internal/validation"
)

// RentalHandler bundles dependencies for the rent and rate endpoints.
type RentalHandler struct {
	Users   UserStore
	Movies  MovieStore
	Rentals RentalStore
}

func NewRentalHandler(u UserStore, m MovieStore, r RentalStore) *RentalHandler {
	return &RentalHandler{Users: u, Movies: m, Rentals: r}
}

// Rent handles POST /rent: validate the pair, check both sides exist,
// create the rental. Renting the same movie twice is allowed; each
// call creates a separate record.
func (h *RentalHandler) Rent(c echo.Context) error {
	var data map[string]any
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	vals, verrs := validation.RentRequest(data)
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "details": verrs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, vals.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user or movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed", "message": err.Error()})
	}
	movie, err := h.Movies.GetByID(ctx, vals.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user or movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed", "message": err.Error()})
	}

	rentalID, err := h.Rentals.Create(ctx, vals.UserID, vals.MovieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create rental failed", "message": err.Error()})
	}

	// Best-effort event; a broker outage must not fail the rent.
	_ = queue.PublishRentalEvent(ctx, queue.RentalEvent{
		Type:       "rental.created",
		RentalID:   rentalID,
		UserID:     vals.UserID,
		MovieID:    vals.MovieID,
		MovieTitle: movie.Title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "movie rented successfully", "id": rentalID})
}

// Rate handles POST /rate: validate, then set the rating on the most
// recent rental of the pair and recompute the movie's aggregate
// rating columns. Both updates commit in one transaction inside the
// store.
func (h *RentalHandler) Rate(c echo.Context) error {
	var data map[string]any
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	vals, verrs := validation.RateRequest(data)
	if verrs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "details": verrs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rentals.Rate(ctx, vals.UserID, vals.MovieID, vals.Rating); err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "rental not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rate failed", "message": err.Error()})
	}

	title := ""
	if movie, err := h.Movies.GetByID(ctx, vals.MovieID); err == nil {
		title = movie.Title
	}
	rating := vals.Rating
	_ = queue.PublishRentalEvent(ctx, queue.RentalEvent{
		Type:       "movie.rated",
		UserID:     vals.UserID,
		MovieID:    vals.MovieID,
		MovieTitle: title,
		Rating:     &rating,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "movie rated successfully"})
}
