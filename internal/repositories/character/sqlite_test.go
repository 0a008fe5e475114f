package character_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charbuilder/internal/testutils"
)

func TestSQLiteRepository(t *testing.T) {
	s := &repositorySuite{}
	s.newRepo = func() character.Repository {
		repo, err := character.NewSQLiteRepository(&character.SQLiteConfig{
			DB: testutils.CreateTestSQLiteDB(s.T()),
		})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func TestNewSQLiteRepositoryRequiresDB(t *testing.T) {
	_, err := character.NewSQLiteRepository(&character.SQLiteConfig{})
	if err == nil {
		t.Fatal("expected error for missing db")
	}
}
