// Package auth issues and validates the signed tokens that identify API
// callers and hashes user passwords with bcrypt.
package auth
