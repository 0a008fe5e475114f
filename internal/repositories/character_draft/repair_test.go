package characterdraft_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	redisclient "github.com/KirkDiggler/rpg-charbuilder/internal/redis"
	characterdraft "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-charbuilder/internal/testutils"
)

type ScanTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client redisclient.Client
	ctx    context.Context
}

func TestScanSuite(t *testing.T) {
	suite.Run(t, new(ScanTestSuite))
}

func (s *ScanTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	s.Require().NoError(s.mr.Set("draft:draft_ok", `{"id":"draft_ok","playerId":"player_1"}`))
	s.Require().NoError(s.mr.Set("draft:player:player_1", "draft_ok"))
}

func (s *ScanTestSuite) TestHealthyKeyspace() {
	report, err := characterdraft.Scan(s.ctx, s.client, false)

	s.Require().NoError(err)
	s.Equal(2, report.Checked)
	s.Empty(report.Problems)
}

func (s *ScanTestSuite) TestFindsBrokenKeys() {
	s.Require().NoError(s.mr.Set("draft:draft_bad", `{"id":`))
	s.Require().NoError(s.mr.Set("draft:draft_moved", `{"id":"draft_other","playerId":"player_2"}`))
	s.Require().NoError(s.mr.Set("draft:player:player_3", "draft_gone"))

	report, err := characterdraft.Scan(s.ctx, s.client, false)

	s.Require().NoError(err)
	s.Equal(5, report.Checked)
	s.Len(report.Problems, 3)
	s.Empty(report.Deleted)
	s.True(s.mr.Exists("draft:draft_bad"))
}

func (s *ScanTestSuite) TestFixDeletesOnlyBrokenKeys() {
	s.Require().NoError(s.mr.Set("draft:draft_bad", "not json"))
	s.Require().NoError(s.mr.Set("draft:player:player_3", "draft_gone"))

	report, err := characterdraft.Scan(s.ctx, s.client, true)

	s.Require().NoError(err)
	s.ElementsMatch([]string{"draft:draft_bad", "draft:player:player_3"}, report.Deleted)
	s.False(s.mr.Exists("draft:draft_bad"))
	s.False(s.mr.Exists("draft:player:player_3"))
	s.True(s.mr.Exists("draft:draft_ok"))
	s.True(s.mr.Exists("draft:player:player_1"))
}

func (s *ScanTestSuite) TestNilClient() {
	_, err := characterdraft.Scan(s.ctx, nil, false)
	s.Error(err)
}
