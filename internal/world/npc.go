package world

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Npc is a non-player character.
type Npc struct {
	Name    string  `json:"name"`
	Species Species `json:"species"`
	Gender  Gender  `json:"gender"`
	Age     int     `json:"age"` // years
}

// Summary returns the one-line form used in listings: the name, then
// species and age group in parentheses, eg. "Agnes Webb (Human adult)".
func (n *Npc) Summary() string {
	return fmt.Sprintf("%s (%s %s)", n.Name, capitalize(string(n.Species)), ageGroup(n.Species, n.Age))
}

// Details returns the block shown when the NPC is loaded.
func (n *Npc) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", n.Name)
	fmt.Fprintf(&sb, "*%s, %s*\n\n", capitalize(string(n.Species)), ageGroup(n.Species, n.Age))
	fmt.Fprintf(&sb, "**Species:** %s\\\n", capitalize(string(n.Species)))
	fmt.Fprintf(&sb, "**Gender:** %s (%s)\\\n", capitalize(string(n.Gender)), n.Gender.Pronouns())
	fmt.Fprintf(&sb, "**Age:** %d years", n.Age)
	return sb.String()
}

// ageGroup maps an age in years onto a rough life stage, scaled by the
// species' adult age range.
func ageGroup(species Species, age int) string {
	bounds, ok := adultAge[species]
	if !ok {
		bounds = adultAge[Human]
	}

	switch {
	case age < bounds.min:
		return "child"
	case age < bounds.min+(bounds.max-bounds.min)/3:
		return "adult"
	case age < bounds.max:
		return "elderly"
	default:
		return "venerable"
	}
}

// Demographics weights the species chosen by the generator when no
// species was requested. With no weights, every generated NPC is human.
type Demographics struct {
	Weights map[Species]int
}

// DefaultDemographics returns the standard population mix.
func DefaultDemographics() Demographics {
	return Demographics{Weights: map[Species]int{
		Human:    700,
		HalfElf:  60,
		Elf:      50,
		Dwarf:    50,
		Halfling: 50,
		Gnome:    30,
		HalfOrc:  30,
		Tiefling: 20,
	}}
}

// pick selects a species from the weighted mix.
func (d Demographics) pick(rng *rand.Rand) Species {
	var total int
	for _, w := range d.Weights {
		total += w
	}
	if total == 0 {
		return Human
	}

	// Map iteration order is random; walk species in a fixed order so
	// the same rng seed always generates the same NPC.
	n := rng.IntN(total)
	for _, s := range AllSpecies {
		w := d.Weights[s]
		if n < w {
			return s
		}
		n -= w
	}
	return Human
}

// GenerateNpc invents an NPC. If species is empty, one is chosen from
// the demographic mix.
func GenerateNpc(rng *rand.Rand, demo Demographics, species Species) *Npc {
	if species == "" {
		species = demo.pick(rng)
	}

	gender := [...]Gender{Feminine, Masculine, Feminine, Masculine, Neutral}[rng.IntN(5)]
	bounds := adultAge[species]

	return &Npc{
		Name:    generateName(rng, species, gender),
		Species: species,
		Gender:  gender,
		Age:     bounds.min + rng.IntN(bounds.max-bounds.min),
	}
}
