// Package store defines the persistence contracts for users and contacts,
// the errors implementations must return, and the connection and transaction
// helpers they share. Implementations live under internal/platform.
package store
