package v1alpha1

import (
	dicesession "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/dice_session"
)

// RollDiceRequest rolls one expression into an entity's session
type RollDiceRequest struct {
	EntityID    string `json:"entityId"`
	Context     string `json:"context"`
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
}

// RollDiceResponse returns every roll in the session
type RollDiceResponse struct {
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	ExpiresAt int64                  `json:"expiresAt"`
}

// GetRollSessionRequest identifies a roll session
type GetRollSessionRequest struct {
	EntityID string `json:"entityId"`
	Context  string `json:"context"`
}

// GetRollSessionResponse is the stored session
type GetRollSessionResponse struct {
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	CreatedAt int64                  `json:"createdAt"`
	ExpiresAt int64                  `json:"expiresAt"`
}

// ClearRollSessionRequest identifies a roll session to remove
type ClearRollSessionRequest struct {
	EntityID string `json:"entityId"`
	Context  string `json:"context"`
}

// ClearRollSessionResponse reports how many rolls were removed
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int    `json:"rollsCleared"`
}
