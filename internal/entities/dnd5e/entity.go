package dnd5e

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types published on the event bus
const (
	EntityTypeCharacter      = "character"
	EntityTypeCharacterDraft = "character_draft"
	EntityTypePlayer         = "player"
)

var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = (*CharacterDraft)(nil)
	_ core.Entity = Player("")
)

// GetID returns the character ID
func (c *Character) GetID() string { return c.ID }

// GetType returns EntityTypeCharacter
func (c *Character) GetType() string { return EntityTypeCharacter }

// GetID returns the draft ID
func (d *CharacterDraft) GetID() string { return d.ID }

// GetType returns EntityTypeCharacterDraft
func (d *CharacterDraft) GetType() string { return EntityTypeCharacterDraft }

// Player identifies the owner of drafts and characters in events
type Player string

// GetID returns the player ID
func (p Player) GetID() string { return string(p) }

// GetType returns EntityTypePlayer
func (p Player) GetType() string { return EntityTypePlayer }
