package dnd5e

import (
	"slices"

	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

// Draft steps reported by Missing
const (
	StepName          = "name"
	StepRace          = "race"
	StepClass         = "class"
	StepBackground    = "background"
	StepAbilityScores = "ability_scores"
	StepEquipment     = "equipment"
)

// CharacterDraft is a character under construction. A player has at most one.
type CharacterDraft struct {
	ID         string           `json:"id"`
	PlayerID   string           `json:"playerId"`
	Name       string           `json:"name,omitempty"`
	Race       rules.Race       `json:"race,omitempty"`
	Subrace    string           `json:"subrace,omitempty"`
	Class      rules.Class      `json:"class,omitempty"`
	Background rules.Background `json:"background,omitempty"`
	Alignment  rules.Alignment  `json:"alignment,omitempty"`

	Method        rules.Method        `json:"method,omitempty"`
	AbilityScores rules.AbilityScores `json:"abilityScores"`
	// RolledPool keeps the values of a rolled set so swaps can be checked
	RolledPool []int `json:"rolledPool,omitempty"`
	// RollSessionID links a rolled set to the dice session that produced it
	RollSessionID string `json:"rollSessionId,omitempty"`

	Spells []rules.SpellRef `json:"spells,omitempty"`

	// EquipmentPack is a pack key or rules.NoPackKey; empty means not chosen
	EquipmentPack  string       `json:"equipmentPack,omitempty"`
	ExtraEquipment []rules.Item `json:"extraEquipment,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
	ExpiresAt int64 `json:"expiresAt"`
}

// HasAbilityScores reports whether a generation method has been applied
func (d *CharacterDraft) HasAbilityScores() bool {
	return d.Method != "" && !d.AbilityScores.IsZero()
}

// TookPack reports whether an actual pack was chosen
func (d *CharacterDraft) TookPack() bool {
	return d.EquipmentPack != "" && d.EquipmentPack != rules.NoPackKey
}

// Missing lists the steps still required before finalization
func (d *CharacterDraft) Missing() []string {
	var missing []string
	if d.Name == "" {
		missing = append(missing, StepName)
	}
	if d.Race == "" {
		missing = append(missing, StepRace)
	}
	if d.Class == "" {
		missing = append(missing, StepClass)
	}
	if d.Background == "" {
		missing = append(missing, StepBackground)
	}
	if !d.HasAbilityScores() {
		missing = append(missing, StepAbilityScores)
	}
	if d.EquipmentPack == "" {
		missing = append(missing, StepEquipment)
	}
	return missing
}

// SpellKeys returns selected spell keys in selection order
func (d *CharacterDraft) SpellKeys(cantrips bool) []string {
	var out []string
	for _, s := range d.Spells {
		if (s.Level == 0) == cantrips {
			out = append(out, s.Key)
		}
	}
	return out
}

// Clone returns a deep copy
func (d *CharacterDraft) Clone() *CharacterDraft {
	if d == nil {
		return nil
	}
	c := *d
	c.RolledPool = slices.Clone(d.RolledPool)
	c.Spells = slices.Clone(d.Spells)
	c.ExtraEquipment = slices.Clone(d.ExtraEquipment)
	return &c
}
