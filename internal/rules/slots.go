package rules

// slot counts by spell level 1..9, indexed by character level - 1
var fullCasterSlots = [20][9]int{
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

var halfCasterSlots = [20][9]int{
	{},
	{2},
	{3},
	{3},
	{4, 2},
	{4, 2},
	{4, 3},
	{4, 3},
	{4, 3, 2},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2},
}

// pact magic: number of slots and the single slot level they are cast at
var pactSlots = [20]struct{ count, level int }{
	{1, 1}, {2, 1}, {2, 2}, {2, 2}, {2, 3},
	{2, 3}, {2, 4}, {2, 4}, {2, 5}, {2, 5},
	{3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{3, 5}, {4, 5}, {4, 5}, {4, 5}, {4, 5},
}

// SpellSlots returns slots per spell level for a progression and level.
// Non-casters get an empty map.
func SpellSlots(progression CasterProgression, level int) map[int]int {
	idx := ClampLevel(level) - 1
	slots := make(map[int]int)

	var row [9]int
	switch progression {
	case CasterFull:
		row = fullCasterSlots[idx]
	case CasterHalf:
		row = halfCasterSlots[idx]
	case CasterPact:
		p := pactSlots[idx]
		slots[p.level] = p.count
		return slots
	default:
		return slots
	}

	for i, n := range row {
		if n > 0 {
			slots[i+1] = n
		}
	}
	return slots
}

// MaxSpellLevel is the highest spell level a progression reaches at level.
// Warlocks follow the full caster curve through Mystic Arcanum.
func MaxSpellLevel(progression CasterProgression, level int) int {
	level = ClampLevel(level)
	switch progression {
	case CasterFull, CasterPact:
		maxLevel := (level + 1) / 2
		if maxLevel > 9 {
			return 9
		}
		return maxLevel
	case CasterHalf:
		switch {
		case level >= 17:
			return 5
		case level >= 13:
			return 4
		case level >= 9:
			return 3
		case level >= 5:
			return 2
		case level >= 2:
			return 1
		}
	}
	return 0
}
