// Package testdb provides migrated databases for tests.
//
// Every test gets its own SQLite file under t.TempDir(). When
// CONTACTS_TEST_DATABASE_URL points at a PostgreSQL server, Postgres returns
// a migrated connection to it instead of skipping.
package testdb
