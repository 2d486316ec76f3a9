package world_test

import (
	"math/rand/v2"
	"testing"

	"github.com/initiative-sh/initiative/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestGenerateNpc(t *testing.T) {
	t.Run("FixedSpecies", func(t *testing.T) {
		npc := world.GenerateNpc(testRng(1), world.DefaultDemographics(), world.Elf)
		assert.Equal(t, world.Elf, npc.Species)
		assert.NotEmpty(t, npc.Name)
		assert.GreaterOrEqual(t, npc.Age, 100)
	})

	t.Run("SpeciesFromDemographics", func(t *testing.T) {
		demo := world.Demographics{Weights: map[world.Species]int{world.Dwarf: 1}}
		npc := world.GenerateNpc(testRng(2), demo, "")
		assert.Equal(t, world.Dwarf, npc.Species)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := world.GenerateNpc(testRng(7), world.DefaultDemographics(), "")
		b := world.GenerateNpc(testRng(7), world.DefaultDemographics(), "")
		assert.Equal(t, a, b, "the same seed generates the same NPC")
	})

	t.Run("EverySpecies", func(t *testing.T) {
		for i, s := range world.AllSpecies {
			npc := world.GenerateNpc(testRng(uint64(i)), world.DefaultDemographics(), s)
			assert.NotEmpty(t, npc.Name, "species %s", s)
			assert.Positive(t, npc.Age, "species %s", s)
		}
	})
}

func TestGeneratePlace(t *testing.T) {
	t.Run("Inn", func(t *testing.T) {
		p := world.GeneratePlace(testRng(1), world.Inn)
		assert.Equal(t, world.Inn, p.Kind)
		assert.Contains(t, p.Name, "The ")
	})

	t.Run("Geographical", func(t *testing.T) {
		p := world.GeneratePlace(testRng(2), world.Desert)
		assert.Equal(t, world.Desert, p.Kind)
		assert.Contains(t, p.Name, "Desert")
	})

	t.Run("EveryKind", func(t *testing.T) {
		for i, k := range world.AllPlaceKinds {
			p := world.GeneratePlace(testRng(uint64(i)), k)
			assert.NotEmpty(t, p.Name, "kind %s", k)
		}
	})
}

func TestThing(t *testing.T) {
	npc := world.GenerateNpc(testRng(3), world.DefaultDemographics(), world.Human)
	thing := &world.Thing{Kind: world.KindNpc, Npc: npc}

	assert.Equal(t, npc.Name, thing.Name())
	assert.False(t, thing.Saved())
	assert.Contains(t, thing.Summary(), npc.Name)
	assert.Contains(t, thing.Details(), "# "+npc.Name)

	t.Run("SetName", func(t *testing.T) {
		thing.SetName("Open Game License")
		assert.Equal(t, "Open Game License", thing.Name())
	})

	t.Run("Clone", func(t *testing.T) {
		clone := thing.Clone()
		require.NotSame(t, thing.Npc, clone.Npc)
		clone.SetName("Other")
		assert.Equal(t, "Open Game License", thing.Name())
	})
}

func TestParseSpecies(t *testing.T) {
	s, ok := world.ParseSpecies("half-elf")
	require.True(t, ok)
	assert.Equal(t, world.HalfElf, s)

	_, ok = world.ParseSpecies("potato")
	assert.False(t, ok)
}
