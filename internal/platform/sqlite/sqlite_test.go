package sqlite_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare path",
			in:   "contacts.db",
			want: "contacts.db?_foreign_keys=1&_busy_timeout=5000",
		},
		{
			name: "uri with params",
			in:   "file:contacts.db?cache=shared",
			want: "file:contacts.db?cache=shared&_foreign_keys=1&_busy_timeout=5000",
		},
		{
			name: "caller value kept",
			in:   "contacts.db?_busy_timeout=100",
			want: "contacts.db?_busy_timeout=100&_foreign_keys=1",
		},
		{
			name: "nothing to add",
			in:   "contacts.db?_foreign_keys=1&_busy_timeout=5000",
			want: "contacts.db?_foreign_keys=1&_busy_timeout=5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sqlite.DSN(tt.in))
		})
	}
}

func TestDialect(t *testing.T) {
	t.Parallel()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	d := sqlite.Dialect{}

	assert.Equal(t, "sqlite3", d.Name())
	assert.True(t, d.IsUniqueViolation(unique))
	assert.True(t, d.IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, d.IsUniqueViolation(fk))
	assert.True(t, d.IsForeignKeyViolation(fk))
	assert.False(t, d.IsForeignKeyViolation(unique))
	assert.False(t, d.IsUniqueViolation(errors.New("constraint failed")))
	assert.False(t, d.IsForeignKeyViolation(nil))
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(sqlite.Migrations(), "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_contacts.sql"}, names)
}
