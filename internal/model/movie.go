package model

// Movie represents a catalog entry in the `movies` table. Besides the
// descriptive columns it carries two aggregate rating fields that are
// recomputed every time a rental of this movie is rated, so reads of
// the average grade never need to scan the rentals table.
//
// Fields:
//  ID           – primary key identifier.
//  Title        – movie title.
//  Genre        – genre name used by the substring search.
//  Year         – release year.
//  Synopsis     – optional plot summary (nil when not provided).
//  Director     – optional director name (nil when not provided).
//  TotalRatings – number of rentals of this movie carrying a rating.
//  FinalGrade   – arithmetic mean of those ratings (nil until the
//                 first rating lands).
type Movie struct {
	ID           uint64   // movies.id
	Title        string   // movies.title
	Genre        string   // movies.genre
	Year         int      // movies.year
	Synopsis     *string  // movies.synopsis (nullable)
	Director     *string  // movies.director (nullable)
	TotalRatings int      // movies.total_ratings
	FinalGrade   *float64 // movies.final_grade (nullable)
}
