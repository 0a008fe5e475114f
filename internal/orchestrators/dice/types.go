package dice

import (
	dicesession "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}

// RollAbilityScoresInput defines the request for rolling ability scores
type RollAbilityScoresInput struct {
	// EntityID is usually the draft ID
	EntityID string
}

// RollAbilityScoresOutput defines the response for rolling ability scores
type RollAbilityScoresOutput struct {
	Rolls []rules.AbilityRoll
	// Values is the rolled pool in sheet order
	Values  []int
	Scores  rules.AbilityScores
	Session *dicesession.DiceSession
}

// RollStartingGoldInput defines the request for a starting purse
type RollStartingGoldInput struct {
	EntityID   string
	Class      rules.ClassInfo
	Background rules.BackgroundInfo
	TookPack   bool
}

// RollStartingGoldOutput defines the response for a starting purse
type RollStartingGoldOutput struct {
	StartingGold rules.StartingGold
	// Session is nil when nothing was rolled
	Session *dicesession.DiceSession
}
