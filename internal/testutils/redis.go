// Package testutils provides helpers shared by package tests: in-memory
// Redis, SQLite and a containerized Postgres.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charbuilder/internal/redis"
)

// CreateTestRedisClient starts a miniredis server for the test. The server
// is returned so tests can fast forward TTLs; both close with the test.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr())
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
