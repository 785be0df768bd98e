package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-rental-api/internal/repository"
)

// UserHandler bundles dependencies for user-centric reads.
type UserHandler struct {
	Users   UserStore
	Rentals RentalStore
}

func NewUserHandler(u UserStore, r RentalStore) *UserHandler {
	return &UserHandler{Users: u, Rentals: r}
}

type userRow struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	IsAdmin bool    `json:"is_admin"`
}

// ListRentals handles GET /users/:id/rentals and returns the user's
// rentals newest first. An unknown user is a 404; a user with no
// rentals gets an empty list.
func (h *UserHandler) ListRentals(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error", "message": err.Error()})
	}

	rentals, err := h.Rentals.ListByUser(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, rentals)
}

// List handles GET /users (admin only; the gate runs before this).
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error", "message": err.Error()})
	}
	out := make([]userRow, 0, len(users))
	for _, u := range users {
		out = append(out, userRow{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, IsAdmin: u.IsAdmin})
	}
	return c.JSON(http.StatusOK, out)
}
