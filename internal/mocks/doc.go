// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes one function field per interface method. When a field is
// nil the mock falls back to a small in-memory behavior good enough for
// handler and service tests:
//
//	users := mocks.NewMockUserStore()
//	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
//	    return nil, errors.New("connection refused")
//	}
package mocks
