package database

import (
	"context"
	"database/sql"
)

// schema holds the DDL for the three tables of the rental catalog.
// Statements are idempotent so EnsureSchema can run on every startup.
// Foreign keys cascade on delete: removing a user or a movie removes
// its rentals but never the entity on the other side of the pair.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name        VARCHAR(100)    NOT NULL,
		phone       VARCHAR(20)     NULL,
		email       VARCHAR(100)    NOT NULL,
		is_admin    BOOLEAN         NOT NULL DEFAULT FALSE,
		admin_token VARCHAR(64)     NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email),
		UNIQUE KEY uq_users_admin_token (admin_token)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS movies (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title         VARCHAR(100)    NOT NULL,
		genre         VARCHAR(50)     NOT NULL,
		year          INT             NOT NULL,
		synopsis      TEXT            NULL,
		director      VARCHAR(100)    NULL,
		total_ratings INT             NOT NULL DEFAULT 0,
		final_grade   DOUBLE          NULL,
		PRIMARY KEY (id),
		KEY idx_movies_genre (genre)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS rentals (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id     BIGINT UNSIGNED NOT NULL,
		movie_id    BIGINT UNSIGNED NOT NULL,
		rental_date DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		rating      DOUBLE          NULL,
		PRIMARY KEY (id),
		KEY idx_rentals_user_movie (user_id, movie_id, rental_date),
		CONSTRAINT fk_rentals_user  FOREIGN KEY (user_id)  REFERENCES users (id)  ON DELETE CASCADE,
		CONSTRAINT fk_rentals_movie FOREIGN KEY (movie_id) REFERENCES movies (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the users, movies and rentals tables when they
// do not exist yet. It is safe to call on every boot.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
