package rules

import "fmt"

// Point buy bounds
const (
	PointBuyBudget = 27
	PointBuyMin    = 8
	PointBuyMax    = 15
)

// cumulative cost to reach a score from 8; 14 and 15 cost two points each
var pointBuyCosts = map[int]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// PointBuyCost returns the cumulative cost of a score
func PointBuyCost(score int) (int, bool) {
	cost, ok := pointBuyCosts[score]
	return cost, ok
}

// RejectReason explains why a point buy change was refused
type RejectReason string

// Reject reasons
const (
	RejectOutOfRange     RejectReason = "score_out_of_range"
	RejectOverBudget     RejectReason = "over_budget"
	RejectUnknownAbility RejectReason = "unknown_ability"
)

// Rejection is returned instead of a new state when a change is refused
type Rejection struct {
	Reason  RejectReason `json:"reason"`
	Message string       `json:"message"`
}

func (r *Rejection) String() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

// PointBuy is an immutable point buy state. Changes return a new value and
// leave the receiver untouched.
type PointBuy struct {
	scores AbilityScores
}

// NewPointBuy starts every ability at 8 with the full budget
func NewPointBuy() PointBuy {
	return PointBuy{scores: ScoresFromValues([]int{8, 8, 8, 8, 8, 8})}
}

// PointBuyFrom rebuilds a state from stored scores
func PointBuyFrom(scores AbilityScores) (PointBuy, *Rejection) {
	p := PointBuy{scores: scores}
	for _, a := range Abilities {
		if _, ok := PointBuyCost(scores.Get(a)); !ok {
			return PointBuy{}, &Rejection{
				Reason:  RejectOutOfRange,
				Message: fmt.Sprintf("%s is %d, must be between %d and %d", a, scores.Get(a), PointBuyMin, PointBuyMax),
			}
		}
	}
	if p.Remaining() < 0 {
		return PointBuy{}, &Rejection{
			Reason:  RejectOverBudget,
			Message: fmt.Sprintf("scores cost %d points, budget is %d", p.Spent(), PointBuyBudget),
		}
	}
	return p, nil
}

// Scores returns the current scores
func (p PointBuy) Scores() AbilityScores {
	return p.scores
}

// Spent returns the points spent across all abilities
func (p PointBuy) Spent() int {
	total := 0
	for _, a := range Abilities {
		cost, _ := PointBuyCost(p.scores.Get(a))
		total += cost
	}
	return total
}

// Remaining returns the unspent budget
func (p PointBuy) Remaining() int {
	return PointBuyBudget - p.Spent()
}

// Complete reports whether the whole budget has been spent
func (p PointBuy) Complete() bool {
	return p.Remaining() == 0
}

// Set moves one ability to score. A score outside [8,15] or a change that
// would overspend the budget is rejected and p is returned unchanged.
func (p PointBuy) Set(a Ability, score int) (PointBuy, *Rejection) {
	parsed, ok := ParseAbility(string(a))
	if !ok {
		return p, &Rejection{Reason: RejectUnknownAbility, Message: fmt.Sprintf("unknown ability %q", a)}
	}
	a = parsed
	if score < PointBuyMin || score > PointBuyMax {
		return p, &Rejection{
			Reason:  RejectOutOfRange,
			Message: fmt.Sprintf("%s must be between %d and %d, got %d", a, PointBuyMin, PointBuyMax, score),
		}
	}

	next := PointBuy{scores: p.scores.With(a, score)}
	if next.Remaining() < 0 {
		return p, &Rejection{
			Reason: RejectOverBudget,
			Message: fmt.Sprintf("raising %s to %d needs %d more points, %d remaining",
				a, score, next.Spent()-p.Spent(), p.Remaining()),
		}
	}
	return next, nil
}

// Adjust moves one ability by delta, with the same rules as Set
func (p PointBuy) Adjust(a Ability, delta int) (PointBuy, *Rejection) {
	if parsed, ok := ParseAbility(string(a)); ok {
		a = parsed
	}
	return p.Set(a, p.scores.Get(a)+delta)
}
