// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrRentalNotFound signals that a rate operation targets a
// (user, movie) pair that was never rented, while ErrEmailExists
// surfaces the unique constraint on users.email as a typed error.
package repository

import "errors"

// ErrUserNotFound is returned when a user lookup by id, email or
// admin token matches no row. Handlers translate this into 404
// (or 403 when the lookup came from the authorization gate).
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound is returned when a movie lookup matches no row.
var ErrMovieNotFound = errors.New("movie not found")

// ErrRentalNotFound is returned when no rental exists for the
// requested (user, movie) pair.
var ErrRentalNotFound = errors.New("rental not found")

// ErrEmailExists is returned when an insert violates the unique
// constraint on users.email. Handlers translate this into 409.
var ErrEmailExists = errors.New("email already exists")
