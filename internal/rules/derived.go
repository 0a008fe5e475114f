package rules

// Character level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)

// ClampLevel forces level into [MinLevel, MaxLevel]
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ProficiencyBonus is ceil(level/4) + 1
func ProficiencyBonus(level int) int {
	level = ClampLevel(level)
	return (level+3)/4 + 1
}

// MaxHitPoints uses the class hit die at first level and the fixed average
// floor(hitDie/2)+1 for each level after. The result is never below 1.
// Unknown classes use DefaultHitDie.
func MaxHitPoints(level, constitution int, class Class) int {
	hitDie, _ := class.HitDie()
	return MaxHitPointsForHitDie(level, constitution, hitDie)
}

// MaxHitPointsForHitDie is MaxHitPoints with an explicit hit die
func MaxHitPointsForHitDie(level, constitution, hitDie int) int {
	level = ClampLevel(level)
	conMod := Modifier(constitution)

	hp := hitDie + conMod
	hp += (level - 1) * (hitDie/2 + 1 + conMod)
	if hp < 1 {
		return 1
	}
	return hp
}

// ArmorClass is 10 + DEX modifier, before equipment
func ArmorClass(dexterity int) int {
	return 10 + Modifier(dexterity)
}

// Initiative is the DEX modifier
func Initiative(dexterity int) int {
	return Modifier(dexterity)
}

// SpellSaveDC is 8 + casting modifier + proficiency bonus
func SpellSaveDC(castingScore, level int) int {
	return 8 + Modifier(castingScore) + ProficiencyBonus(level)
}

// SpellAttackBonus is casting modifier + proficiency bonus
func SpellAttackBonus(castingScore, level int) int {
	return Modifier(castingScore) + ProficiencyBonus(level)
}

// DerivedCombatStats is computed from scores, class and level and never
// stored apart from them
type DerivedCombatStats struct {
	Level            int             `json:"level"`
	HitDie           int             `json:"hitDie"`
	HitDieDefaulted  bool            `json:"hitDieDefaulted,omitempty"`
	MaxHitPoints     int             `json:"maxHitPoints"`
	ArmorClass       int             `json:"armorClass"`
	Initiative       int             `json:"initiative"`
	ProficiencyBonus int             `json:"proficiencyBonus"`
	Modifiers        map[Ability]int `json:"modifiers"`
	SavingThrows     []Ability       `json:"savingThrows,omitempty"`
}

// Derive computes the combat stats for a set of scores
func Derive(scores AbilityScores, class Class, level int) DerivedCombatStats {
	level = ClampLevel(level)
	hitDie, known := class.HitDie()

	stats := DerivedCombatStats{
		Level:            level,
		HitDie:           hitDie,
		HitDieDefaulted:  !known,
		MaxHitPoints:     MaxHitPointsForHitDie(level, scores.Constitution, hitDie),
		ArmorClass:       ArmorClass(scores.Dexterity),
		Initiative:       Initiative(scores.Dexterity),
		ProficiencyBonus: ProficiencyBonus(level),
		Modifiers:        scores.Modifiers(),
	}
	if info, ok := class.Info(); ok {
		stats.SavingThrows = info.SavingThrows[:]
	}
	return stats
}
