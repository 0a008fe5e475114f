package rules

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

const (
	// AbilityDiceCount is the number of d6 rolled per ability
	AbilityDiceCount = 4
	// AbilityDiceKept is the number of highest dice summed
	AbilityDiceKept = 3
)

// StandardArray is the fixed multiset assigned by the standardArray method
var StandardArray = [6]int{15, 14, 13, 12, 10, 8}

// AbilityRoll is one 4d6-drop-lowest result
type AbilityRoll struct {
	Kept    []int `json:"kept"`
	Dropped []int `json:"dropped"`
	Total   int   `json:"total"`
}

// Generated is the output of a generation method
type Generated struct {
	Method Method
	// Fallback is set when the requested method was not recognized and
	// DefaultMethod was used instead
	Fallback bool
	Scores   AbilityScores
	// Rolls holds the dice behind a rolled set, in sheet order
	Rolls []AbilityRoll
}

// Generator produces ability score sets
type Generator struct {
	roller dice.Roller
}

// NewGenerator creates a generator; a nil roller uses dice.DefaultRoller
func NewGenerator(roller dice.Roller) *Generator {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Generator{roller: roller}
}

// RollAbilityScore rolls four d6 and keeps the three highest
func (g *Generator) RollAbilityScore() (AbilityRoll, error) {
	rolls, err := g.roller.RollN(AbilityDiceCount, 6)
	if err != nil {
		return AbilityRoll{}, errors.Wrap(err, "failed to roll ability dice")
	}

	sorted := slices.Clone(rolls)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	roll := AbilityRoll{
		Kept:    sorted[:AbilityDiceKept],
		Dropped: sorted[AbilityDiceKept:],
	}
	for _, d := range roll.Kept {
		roll.Total += d
	}
	return roll, nil
}

// RollScores rolls one value per ability, in sheet order
func (g *Generator) RollScores() ([]AbilityRoll, error) {
	rolls := make([]AbilityRoll, len(Abilities))
	for i := range Abilities {
		roll, err := g.RollAbilityScore()
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return rolls, nil
}

// Generate produces a set for the method. The assignment is only read by
// standardArray; nil lays the array out in sheet order. An unrecognized
// method rolls and sets Fallback.
func (g *Generator) Generate(method Method, assignment map[Ability]int) (*Generated, error) {
	method, known := ParseMethod(string(method))

	out := &Generated{Method: method, Fallback: !known}
	switch method {
	case MethodStandardArray:
		scores, err := AssignStandardArray(assignment)
		if err != nil {
			return nil, err
		}
		out.Scores = scores
	case MethodPointBuy:
		out.Scores = NewPointBuy().Scores()
	default:
		rolls, err := g.RollScores()
		if err != nil {
			return nil, err
		}
		values := make([]int, len(rolls))
		for i, r := range rolls {
			values[i] = r.Total
		}
		out.Scores = ScoresFromValues(values)
		out.Rolls = rolls
	}
	return out, nil
}

// AssignStandardArray places the standard array according to a caller chosen
// assignment. Every ability must be assigned and every value used exactly once.
func AssignStandardArray(assignment map[Ability]int) (AbilityScores, error) {
	if len(assignment) == 0 {
		return ScoresFromValues(StandardArray[:]), nil
	}

	vb := errors.NewValidationBuilder()
	values := make([]int, 0, len(Abilities))
	for _, a := range Abilities {
		v, ok := assignment[a]
		if !ok {
			vb.RequiredField(string(a))
			continue
		}
		values = append(values, v)
	}
	for a := range assignment {
		if !slices.Contains(Abilities[:], a) {
			vb.Fieldf(string(a), "is not an ability")
		}
	}
	if err := vb.Build(); err != nil {
		return AbilityScores{}, err
	}

	if !IsStandardArray(values) {
		return AbilityScores{}, errors.InvalidArgumentf(
			"assignment must use each of %v exactly once, got %v", StandardArray, values)
	}

	var scores AbilityScores
	for _, a := range Abilities {
		scores = scores.With(a, assignment[a])
	}
	return scores, nil
}

// IsStandardArray reports whether values is a permutation of StandardArray
func IsStandardArray(values []int) bool {
	if len(values) != len(StandardArray) {
		return false
	}
	got := slices.Clone(values)
	want := slices.Clone(StandardArray[:])
	slices.Sort(got)
	slices.Sort(want)
	return slices.Equal(got, want)
}
