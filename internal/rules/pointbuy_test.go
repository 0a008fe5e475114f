package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

type PointBuyTestSuite struct {
	suite.Suite
}

func TestPointBuySuite(t *testing.T) {
	suite.Run(t, new(PointBuyTestSuite))
}

func (s *PointBuyTestSuite) TestCostTable() {
	expected := map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}
	for score, cost := range expected {
		got, ok := rules.PointBuyCost(score)
		s.True(ok)
		s.Equal(cost, got, "score %d", score)
	}

	_, ok := rules.PointBuyCost(16)
	s.False(ok)
	_, ok = rules.PointBuyCost(7)
	s.False(ok)
}

func (s *PointBuyTestSuite) TestStartsWithFullBudget() {
	pb := rules.NewPointBuy()

	s.Equal(27, pb.Remaining())
	s.Equal(0, pb.Spent())
	s.False(pb.Complete())
}

func (s *PointBuyTestSuite) TestThirteenToFifteenCostsFour() {
	pb, rej := rules.NewPointBuy().Set(rules.Strength, 13)
	s.Require().Nil(rej)
	before := pb.Remaining()

	pb, rej = pb.Set(rules.Strength, 15)

	s.Require().Nil(rej)
	s.Equal(4, before-pb.Remaining())
	s.Equal(15, pb.Scores().Strength)
}

func (s *PointBuyTestSuite) TestOverBudgetKeepsState() {
	pb := rules.NewPointBuy()
	var rej *rules.Rejection
	for _, a := range []rules.Ability{rules.Strength, rules.Dexterity, rules.Constitution} {
		pb, rej = pb.Set(a, 15)
		s.Require().Nil(rej)
	}
	s.Require().True(pb.Complete())
	before := pb.Scores()

	next, rej := pb.Adjust(rules.Intelligence, 1)

	s.Require().NotNil(rej)
	s.Equal(rules.RejectOverBudget, rej.Reason)
	s.Equal(before, next.Scores())
	s.Equal(0, next.Remaining())
}

func (s *PointBuyTestSuite) TestOutOfRangeRejected() {
	testCases := []struct {
		name  string
		score int
	}{
		{"below minimum", 7},
		{"above maximum", 16},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			pb := rules.NewPointBuy()

			next, rej := pb.Set(rules.Wisdom, tc.score)

			s.Require().NotNil(rej)
			s.Equal(rules.RejectOutOfRange, rej.Reason)
			s.Equal(pb.Scores(), next.Scores())
		})
	}
}

func (s *PointBuyTestSuite) TestUnknownAbilityRejected() {
	_, rej := rules.NewPointBuy().Set(rules.Ability("luck"), 10)

	s.Require().NotNil(rej)
	s.Equal(rules.RejectUnknownAbility, rej.Reason)
}

func (s *PointBuyTestSuite) TestLoweringRefundsPoints() {
	pb, _ := rules.NewPointBuy().Set(rules.Charisma, 14)
	s.Equal(20, pb.Remaining())

	pb, rej := pb.Adjust(rules.Charisma, -1)

	s.Nil(rej)
	s.Equal(22, pb.Remaining())
}

func (s *PointBuyTestSuite) TestFromScores() {
	_, rej := rules.PointBuyFrom(rules.ScoresFromValues([]int{15, 15, 15, 15, 8, 8}))
	s.Require().NotNil(rej)
	s.Equal(rules.RejectOverBudget, rej.Reason)

	pb, rej := rules.PointBuyFrom(rules.ScoresFromValues([]int{15, 14, 13, 10, 10, 8}))
	s.Require().Nil(rej)
	s.Equal(2, pb.Remaining())
}
