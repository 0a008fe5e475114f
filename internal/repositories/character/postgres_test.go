//go:build integration

package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charbuilder/internal/testutils"
)

func TestPostgresRepository(t *testing.T) {
	pool := testutils.CreateTestPostgresPool(t)

	s := &repositorySuite{}
	s.newRepo = func() character.Repository {
		_, err := pool.Exec(context.Background(), `TRUNCATE characters`)
		s.Require().NoError(err)

		repo, err := character.NewPostgresRepository(&character.PostgresConfig{Pool: pool})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}
