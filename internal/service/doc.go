// Package service contains the application use cases: registering and
// authenticating accounts, and managing the address book of the
// authenticated user.
//
// Services validate input with the rules in internal/domain, delegate
// persistence to the interfaces in internal/store and return sentinel errors
// that the API layer maps onto HTTP responses. They never depend on a
// concrete storage implementation.
package service
