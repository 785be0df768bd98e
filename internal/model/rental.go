package model

import "time"

// Rental links one user to one movie at a point in time. A user may
// rent the same movie any number of times; each rent creates a new
// row. The rating is set later through the rate operation and only
// on the most recent rental of the pair.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user who rented (FK, cascade on user delete).
//  MovieID    – movie rented (FK, cascade on movie delete).
//  RentalDate – when the rental was created.
//  Rating     – rating in [0,5], nil until the rental is rated.
type Rental struct {
	ID         uint64    // rentals.id
	UserID     uint64    // rentals.user_id
	MovieID    uint64    // rentals.movie_id
	RentalDate time.Time // rentals.rental_date
	Rating     *float64  // rentals.rating (nullable)
}

// UserRental is the read shape for listing a user's rentals; it joins
// the movie title onto the rental row so handlers do not issue a
// second query per row.
type UserRental struct {
	ID         uint64    `json:"id"`
	MovieTitle string    `json:"movie_title"`
	RentalDate time.Time `json:"rental_date"`
	Rating     *float64  `json:"rating"`
}
