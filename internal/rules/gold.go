package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

var goldFormulaPattern = regexp.MustCompile(`^(\d+)d(\d+)(?:\*(\d+))?$`)

// GoldFormula is an NdM or NdM*K starting gold roll
type GoldFormula struct {
	Count      int
	Size       int
	Multiplier int
}

// ParseGoldFormula parses "5d4*10" or "5d4"
func ParseGoldFormula(s string) (GoldFormula, error) {
	m := goldFormulaPattern.FindStringSubmatch(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if m == nil {
		return GoldFormula{}, errors.InvalidArgumentf("invalid gold formula %q", s)
	}

	f := GoldFormula{Multiplier: 1}
	f.Count, _ = strconv.Atoi(m[1])
	f.Size, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		f.Multiplier, _ = strconv.Atoi(m[3])
	}
	if f.Count < 1 || f.Size < 1 || f.Multiplier < 1 {
		return GoldFormula{}, errors.InvalidArgumentf("invalid gold formula %q", s)
	}
	return f, nil
}

// String renders the formula for roll details, e.g. "5d4×10"
func (f GoldFormula) String() string {
	if f.Multiplier > 1 {
		return fmt.Sprintf("%dd%d×%d", f.Count, f.Size, f.Multiplier)
	}
	return fmt.Sprintf("%dd%d", f.Count, f.Size)
}

// GoldRoll is a rolled amount of gold with the dice behind it
type GoldRoll struct {
	Formula GoldFormula
	Rolls   []int
	Gold    int
}

// Roll rolls the formula
func (f GoldFormula) Roll(roller dice.Roller) (GoldRoll, error) {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	rolls, err := roller.RollN(f.Count, f.Size)
	if err != nil {
		return GoldRoll{}, errors.Wrapf(err, "failed to roll %s", f)
	}
	sum := 0
	for _, r := range rolls {
		sum += r
	}
	return GoldRoll{Formula: f, Rolls: rolls, Gold: sum * f.Multiplier}, nil
}

// Details renders "Wizard 4d4×10 [1, 2, 3, 4] = 100 gp"
func (r GoldRoll) Details(label string) string {
	parts := make([]string, len(r.Rolls))
	for i, v := range r.Rolls {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%s %s [%s] = %d gp", label, r.Formula, strings.Join(parts, ", "), r.Gold)
}

// StartingGold is the purse a finished character begins with
type StartingGold struct {
	Gold    int        `json:"gold"`
	Details string     `json:"details"`
	Rolled  bool       `json:"rolled"`
	Rolls   []GoldRoll `json:"-"`
}

// ComputeStartingGold follows the pack rule: taking a pack gives the
// background's fixed purse, taking none rolls the class formula plus the
// background formula when there is one. A missing class formula falls back to
// the background purse.
func ComputeStartingGold(class ClassInfo, background BackgroundInfo, tookPack bool, roller dice.Roller) (StartingGold, error) {
	if tookPack {
		return StartingGold{
			Gold:    background.StartingGold,
			Details: fmt.Sprintf("Background gold: %d gp (equipment pack items included)", background.StartingGold),
		}, nil
	}

	if class.StartingGold == "" {
		return StartingGold{
			Gold:    background.StartingGold,
			Details: fmt.Sprintf("Fallback to background: %d gp", background.StartingGold),
		}, nil
	}

	out := StartingGold{Rolled: true}
	details := make([]string, 0, 2)

	formulas := []struct {
		label   string
		formula string
	}{
		{class.Name, class.StartingGold},
		{background.Name, background.GoldFormula},
	}
	for _, f := range formulas {
		if f.formula == "" {
			continue
		}
		parsed, err := ParseGoldFormula(f.formula)
		if err != nil {
			return StartingGold{}, err
		}
		roll, err := parsed.Roll(roller)
		if err != nil {
			return StartingGold{}, err
		}
		out.Gold += roll.Gold
		out.Rolls = append(out.Rolls, roll)
		details = append(details, roll.Details(f.label))
	}

	out.Details = strings.Join(details, " + ")
	return out, nil
}
