package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-rental-api/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/movie-rental-api/internal/middleware" // import middleware for the admin gate
)

// Handlers groups everything RegisterRoutes needs so main can wire
// the application in one call.
type Handlers struct {
	Rental *handler.RentalHandler
	Movie  *handler.MovieHandler
	User   *handler.UserHandler
	Admin  *handler.AdminHandler
}

// RegisterRoutes registers every endpoint of the API on the provided
// Echo instance. The admin-only endpoints are grouped behind the
// admin-token gate built from the users lookup. The catalog reads can
// optionally be wrapped in the Redis response cache (pass nil to
// skip).
func RegisterRoutes(e *echo.Echo, h Handlers, users middleware.AdminLookup, cache echo.MiddlewareFunc) {
	// Root greeting plus the health check used by load balancers and
	// monitoring systems to verify that the service is up.
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)

	// Public write endpoints: renting and rating need no credentials.
	e.POST("/rent", h.Rental.Rent)
	e.POST("/rate", h.Rental.Rate)

	// Public catalog reads. These are the hot read paths, so the
	// response cache (when enabled) sits only here.
	reads := e.Group("")
	if cache != nil {
		reads.Use(cache)
	}
	reads.GET("/movies", h.Movie.List)
	reads.GET("/movies/genre", h.Movie.SearchByGenre)
	reads.GET("/movies/:id", h.Movie.Detail)

	// Per-user rental history is public as well.
	e.GET("/users/:id/rentals", h.User.ListRentals)

	// Admin elevation is deliberately public: it is the only way an
	// admin token is ever issued or revealed.
	e.POST("/create_admin", h.Admin.CreateAdmin)

	// Admin-only endpoints behind the token gate.
	admin := e.Group("", middleware.AdminAuth(users))
	admin.GET("/users", h.User.List)
	admin.POST("/add_user", h.Admin.AddUser)
	admin.POST("/add_movie", h.Admin.AddMovie)
	admin.POST("/clear_database", h.Admin.ClearDatabase)
	admin.POST("/populate_database", h.Admin.PopulateDatabase)
}
