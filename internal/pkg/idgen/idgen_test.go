package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("draft")

	id := gen.Generate()

	require.True(t, strings.HasPrefix(id, "draft_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "draft_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("char")

	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
