// Package queue defines message payloads exchanged over the message broker.
package queue

// RentalEvent is published on the rental.events queue whenever a
// rental is created or rated. It carries enough information for
// downstream consumers to log or trigger analytics without querying
// the primary database.
//
// Type is "rental.created" or "movie.rated"; Rating is only set for
// the latter.
type RentalEvent struct {
	Type       string   `json:"type"`
	RentalID   uint64   `json:"rental_id,omitempty"`
	UserID     uint64   `json:"user_id"`
	MovieID    uint64   `json:"movie_id"`
	MovieTitle string   `json:"movie_title"`
	Rating     *float64 `json:"rating,omitempty"`
	OccurredAt string   `json:"occurred_at"`
}
