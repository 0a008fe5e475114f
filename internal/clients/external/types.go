package external

import (
	"github.com/fadedpez/dnd5e-api/entities"
)

// RaceData represents race information from the API
type RaceData struct {
	Key   string
	Name  string
	Size  string
	Speed int
	// AbilityBonuses is keyed by API ability key ("str", "dex", ...)
	AbilityBonuses map[string]int
	Subraces       []string
}

// ClassData represents class information from the API
type ClassData struct {
	Key          string
	Name         string
	HitDie       int
	SavingThrows []string
}

// SpellData represents spell information from the API
type SpellData struct {
	Key           string
	Name          string
	Level         int
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Ritual        bool
	Concentration bool
}

// ListSpellsInput filters ListSpells
type ListSpellsInput struct {
	// Level filters by spell level when set
	Level *int
	// Class filters by class key, e.g. "wizard"
	Class string
}

func convertRace(race *entities.Race) *RaceData {
	if race == nil {
		return nil
	}

	bonuses := make(map[string]int, len(race.AbilityBonuses))
	for _, bonus := range race.AbilityBonuses {
		if bonus != nil && bonus.AbilityScore != nil {
			bonuses[bonus.AbilityScore.Key] += bonus.Bonus
		}
	}

	subraces := make([]string, 0, len(race.SubRaces))
	for _, subrace := range race.SubRaces {
		if subrace != nil {
			subraces = append(subraces, subrace.Key)
		}
	}

	return &RaceData{
		Key:            race.Key,
		Name:           race.Name,
		Size:           race.Size,
		Speed:          race.Speed,
		AbilityBonuses: bonuses,
		Subraces:       subraces,
	}
}

func convertClass(class *entities.Class) *ClassData {
	if class == nil {
		return nil
	}

	saves := make([]string, 0, len(class.SavingThrows))
	for _, st := range class.SavingThrows {
		if st != nil {
			saves = append(saves, st.Key)
		}
	}

	return &ClassData{
		Key:          class.Key,
		Name:         class.Name,
		HitDie:       class.HitDie,
		SavingThrows: saves,
	}
}

func convertSpell(spell *entities.Spell) *SpellData {
	if spell == nil {
		return nil
	}

	data := &SpellData{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Ritual:        spell.Ritual,
		Concentration: spell.Concentration,
	}
	if spell.SpellSchool != nil {
		data.School = spell.SpellSchool.Name
	}
	return data
}
