package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charbuilder/internal/db"
)

// CreateTestSQLiteDB opens a migrated in-memory SQLite database that closes
// with the test.
func CreateTestSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(ctx, sqlDB, db.DialectSQLite), "failed to migrate sqlite")
	return sqlDB
}
