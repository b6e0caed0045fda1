package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table creation order matters: reviews references books.
//
// books.category_id/author_id deliberately carry no foreign key: deleting a
// category or author must succeed and leave the book references dangling,
// which an enforced constraint would forbid. The repositories check parent
// existence on book insert/update instead.
var tables = []struct {
	name string
	ddl  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(255) UNIQUE,
			password VARCHAR(255),
			role VARCHAR(16) CHECK (role IN ('admin', 'user')),
			first_name VARCHAR(255),
			last_name VARCHAR(255),
			email VARCHAR(255)
		)`},
	{"categories", `
		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255)
		)`},
	{"authors", `
		CREATE TABLE IF NOT EXISTS authors (
			id BIGSERIAL PRIMARY KEY,
			photo VARCHAR(255),
			first_name VARCHAR(255),
			last_name VARCHAR(255),
			date_of_birth DATE
		)`},
	{"books", `
		CREATE TABLE IF NOT EXISTS books (
			id BIGSERIAL PRIMARY KEY,
			photo VARCHAR(255),
			name VARCHAR(255),
			description TEXT,
			category_id BIGINT,
			author_id BIGINT
		)`},
	{"reviews", `
		CREATE TABLE IF NOT EXISTS reviews (
			id BIGSERIAL PRIMARY KEY,
			book_id BIGINT REFERENCES books (id) ON DELETE CASCADE,
			review_text TEXT,
			rating INT,
			stars INT
		)`},
}

// Ensure creates the catalog tables if they do not exist yet. It never
// drops or alters anything, so it is safe to run on every process start.
func Ensure(ctx context.Context, pg *pgxpool.Pool, l *slog.Logger) error {
	for _, t := range tables {
		_, err := pg.Exec(ctx, t.ddl)
		if err != nil {
			return fmt.Errorf("creating table %s: %w", t.name, err)
		}

		l.InfoContext(ctx, t.name+" table initialized")
	}

	return nil
}
