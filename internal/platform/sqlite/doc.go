// Package sqlite adapts the SQL stores to SQLite through mattn/go-sqlite3.
// It is used for local development, single-node deployments and tests.
package sqlite
