package rules

import "strings"

// Ability is one of the six ability keys
type Ability string

// Ability keys
const (
	Strength     Ability = "strength"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Charisma     Ability = "charisma"
)

// Abilities lists the abilities in sheet order
var Abilities = [6]Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

var abilityAliases = map[string]Ability{
	"str": Strength,
	"dex": Dexterity,
	"con": Constitution,
	"int": Intelligence,
	"wis": Wisdom,
	"cha": Charisma,
}

// ParseAbility accepts full names, three letter abbreviations and
// ABILITY_ prefixed constants in any case
func ParseAbility(s string) (Ability, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "ability_")
	for _, a := range Abilities {
		if key == string(a) {
			return a, true
		}
	}
	a, ok := abilityAliases[key]
	return a, ok
}

// AbilityScores is a complete set of six scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability, 0 for an unknown key
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case Strength:
		return s.Strength
	case Dexterity:
		return s.Dexterity
	case Constitution:
		return s.Constitution
	case Intelligence:
		return s.Intelligence
	case Wisdom:
		return s.Wisdom
	case Charisma:
		return s.Charisma
	default:
		return 0
	}
}

// With returns a copy with one ability replaced
func (s AbilityScores) With(a Ability, value int) AbilityScores {
	switch a {
	case Strength:
		s.Strength = value
	case Dexterity:
		s.Dexterity = value
	case Constitution:
		s.Constitution = value
	case Intelligence:
		s.Intelligence = value
	case Wisdom:
		s.Wisdom = value
	case Charisma:
		s.Charisma = value
	}
	return s
}

// Swap returns a copy with the values of a and b exchanged. The set is
// returned unchanged when either key is not an ability.
func (s AbilityScores) Swap(a, b Ability) AbilityScores {
	a, okA := ParseAbility(string(a))
	b, okB := ParseAbility(string(b))
	if !okA || !okB {
		return s
	}
	va, vb := s.Get(a), s.Get(b)
	return s.With(a, vb).With(b, va)
}

// Values returns the scores in sheet order
func (s AbilityScores) Values() []int {
	out := make([]int, len(Abilities))
	for i, a := range Abilities {
		out[i] = s.Get(a)
	}
	return out
}

// IsZero reports whether no score has been set
func (s AbilityScores) IsZero() bool {
	return s == AbilityScores{}
}

// Add returns a copy with the bonuses added
func (s AbilityScores) Add(bonuses map[Ability]int) AbilityScores {
	for a, bonus := range bonuses {
		s = s.With(a, s.Get(a)+bonus)
	}
	return s
}

// Modifiers returns the modifier of every ability
func (s AbilityScores) Modifiers() map[Ability]int {
	out := make(map[Ability]int, len(Abilities))
	for _, a := range Abilities {
		out[a] = Modifier(s.Get(a))
	}
	return out
}

// ScoresFromValues lays values out in sheet order
func ScoresFromValues(values []int) AbilityScores {
	var s AbilityScores
	for i, a := range Abilities {
		if i < len(values) {
			s = s.With(a, values[i])
		}
	}
	return s
}

// Modifier is floor((score - 10) / 2), rounding toward negative infinity
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}
