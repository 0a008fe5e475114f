package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/rules"
)

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"str=15", "DEX=14", "ability_con= 13"})
	require.NoError(t, err)
	assert.Equal(t, map[rules.Ability]int{
		rules.Strength:     15,
		rules.Dexterity:    14,
		rules.Constitution: 13,
	}, got)

	_, err = parseAssignments([]string{"str15"})
	assert.Error(t, err)

	_, err = parseAssignments([]string{"luck=12"})
	assert.ErrorContains(t, err, "unknown ability")

	_, err = parseAssignments([]string{"str=high"})
	assert.ErrorContains(t, err, "not a number")
}

func TestParseSpells(t *testing.T) {
	got, err := parseSpells([]string{"fire-bolt", "magic-missile:1", " shield : 1"})
	require.NoError(t, err)
	assert.Equal(t, []rules.SpellRef{
		{Key: "fire-bolt", Level: 0},
		{Key: "magic-missile", Level: 1},
		{Key: "shield", Level: 1},
	}, got)

	_, err = parseSpells([]string{"fireball:three"})
	assert.Error(t, err)
}

func TestParseItems(t *testing.T) {
	got, err := parseItems([]string{"Rope", "Torch:10"})
	require.NoError(t, err)
	assert.Equal(t, []rules.Item{
		{Name: "Rope", Quantity: 1},
		{Name: "Torch", Quantity: 10},
	}, got)

	_, err = parseItems([]string{"Torch:many"})
	assert.Error(t, err)
}

func TestDescribeIncludesViolations(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("draft_id")
	err := describe(vb.Build())

	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
	assert.Contains(t, err.Error(), "draft_id: is required")
}

func TestPrintJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"gold": 15}))
	assert.Equal(t, "{\n  \"gold\": 15\n}\n", buf.String())
}

func TestClientCmdRegistersCommands(t *testing.T) {
	for _, name := range []string{
		"create-draft", "update-race", "generate-abilities", "point-buy", "select-spells",
		"select-pack", "preview", "finalize", "list-characters", "spell-profile",
		"list-spells", "roll-dice", "clear-roll-session",
	} {
		cmd, _, err := ClientCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestPointBuyTakesScoreOrDelta(t *testing.T) {
	cmd, _, err := ClientCmd.Find([]string{"point-buy"})
	require.NoError(t, err)

	assert.NotNil(t, cmd.Flags().Lookup("score"))
	assert.NotNil(t, cmd.Flags().Lookup("delta"))

	require.NoError(t, cmd.ParseFlags([]string{"--draft-id", "draft_1", "--ability", "dex", "--delta", "-1"}))
	delta, err := cmd.Flags().GetInt("delta")
	require.NoError(t, err)
	assert.Equal(t, -1, delta)
}
