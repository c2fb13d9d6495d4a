package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/platform/logger"
)

// Connector hands out dedicated connections. *sql.DB implements it.
type Connector interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// ConnFn is a function that runs on a connection reserved for it alone.
type ConnFn func(ctx context.Context, conn *sql.Conn) error

// WithConn reserves one connection from the pool for the duration of fn and
// returns it to the pool on every exit path, including panics. No connection
// is shared between concurrent callers.
func WithConn(ctx context.Context, db Connector, fn ConnFn) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logger.FromContext(ctx).Error("failed to release connection",
				slog.String("error", cerr.Error()))
		}
	}()

	return fn(ctx, conn)
}
