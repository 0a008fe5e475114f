// Package dicesession stores dice rolls grouped by entity and context so a
// client can show the dice behind a generated value
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-charbuilder/internal/repositories/dice_session Repository

// Roll contexts used by the character builder
const (
	ContextAbilityScores = "ability_scores"
	ContextStartingGold  = "starting_gold"
)

// DiceSession is every roll made for one entity in one context
type DiceSession struct {
	// EntityID owns the rolls, e.g. a draft ID
	EntityID string `json:"entityId"`
	// Context groups related rolls, e.g. "ability_scores"
	Context   string     `json:"context"`
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// DiceRoll is one rolled expression
type DiceRoll struct {
	RollID      string `json:"rollId"`
	Notation    string `json:"notation"`
	Dice        []int  `json:"dice"`
	Dropped     []int  `json:"dropped,omitempty"`
	Modifier    int    `json:"modifier,omitempty"`
	Total       int    `json:"total"`
	Description string `json:"description,omitempty"`
}

// CreateInput replaces any session for the entity and context
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	// TTL defaults to the repository TTL
	TTL time.Duration
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *DiceSession
}

// AppendInput adds rolls to a session, creating it if needed
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
}

// AppendOutput contains the updated session
type AppendOutput struct {
	Session *DiceSession
}

// GetInput identifies a session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput identifies a session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput reports how many rolls were removed
type DeleteOutput struct {
	RollsDeleted int
}

// Repository stores dice sessions
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	// Append keeps the session's original expiry
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
