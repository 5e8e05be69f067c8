// Package postgres implements the store interfaces against a
// PostgreSQL database using database/sql with the pgx driver.
package postgres
