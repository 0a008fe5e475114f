package dnd5e

import (
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// Character is a finalized level 1 character
type Character struct {
	ID         string           `json:"id"`
	PlayerID   string           `json:"playerId"`
	Name       string           `json:"name"`
	Race       rules.Race       `json:"race"`
	Subrace    string           `json:"subrace,omitempty"`
	Class      rules.Class      `json:"class"`
	Background rules.Background `json:"background"`
	Alignment  rules.Alignment  `json:"alignment,omitempty"`
	Level      int              `json:"level"`

	Method rules.Method `json:"method"`
	// BaseAbilityScores are the generated scores before racial bonuses
	BaseAbilityScores rules.AbilityScores      `json:"baseAbilityScores"`
	AbilityScores     rules.AbilityScores      `json:"abilityScores"`
	Stats             rules.DerivedCombatStats `json:"stats"`
	CurrentHP         int                      `json:"currentHp"`

	Skills       []string      `json:"skills,omitempty"`
	Inventory    []rules.Item  `json:"inventory,omitempty"`
	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`

	Currency        Currency `json:"currency"`
	GoldRollDetails string   `json:"goldRollDetails,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Spellcasting is the finalized spell block of a caster
type Spellcasting struct {
	Ability       rules.Ability          `json:"ability"`
	Type          rules.SpellcastingType `json:"type"`
	SaveDC        int                    `json:"saveDc"`
	AttackBonus   int                    `json:"attackBonus"`
	MaxSpellLevel int                    `json:"maxSpellLevel"`
	SpellSlots    map[int]int            `json:"spellSlots"`
	Cantrips      []string               `json:"cantrips,omitempty"`
	// Known is nil for prepared casters, who know the whole class list
	Known    []string `json:"known"`
	Prepared []string `json:"prepared"`
}

// Currency is a purse
type Currency struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Copper int `json:"copper"`
}
