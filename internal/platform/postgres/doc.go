// Package postgres adapts the SQL stores to PostgreSQL through the pgx
// database/sql driver. It owns the PostgreSQL schema migrations and the
// translation of pgconn error codes into constraint categories.
package postgres
