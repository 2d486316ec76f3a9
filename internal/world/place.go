package world

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// PlaceKind classifies a place.
type PlaceKind string

// Building kinds.
const (
	Inn       PlaceKind = "inn"
	Residence PlaceKind = "residence"
	Shop      PlaceKind = "shop"
	Temple    PlaceKind = "temple"
	Warehouse PlaceKind = "warehouse"
)

// Geographical kinds.
const (
	Beach  PlaceKind = "beach"
	Canyon PlaceKind = "canyon"
	Desert PlaceKind = "desert"
	Forest PlaceKind = "forest"
	Island PlaceKind = "island"
	Swamp  PlaceKind = "swamp"
)

// AllPlaceKinds lists every place kind accepted by commands.
var AllPlaceKinds = []PlaceKind{
	Inn, Residence, Shop, Temple, Warehouse,
	Beach, Canyon, Desert, Forest, Island, Swamp,
}

// PlaceWords returns the place keywords accepted by commands.
func PlaceWords() []string {
	words := make([]string, len(AllPlaceKinds))
	for i, k := range AllPlaceKinds {
		words[i] = string(k)
	}
	return words
}

// ParsePlaceKind resolves a command keyword to a place kind.
func ParsePlaceKind(word string) (PlaceKind, bool) {
	for _, k := range AllPlaceKinds {
		if string(k) == word {
			return k, true
		}
	}
	return "", false
}

// Place is a location in the world.
type Place struct {
	Name        string    `json:"name"`
	Kind        PlaceKind `json:"kind"`
	Description string    `json:"description,omitempty"`
}

// Summary returns the one-line form used in listings.
func (p *Place) Summary() string {
	return fmt.Sprintf("%s (%s)", p.Name, capitalize(string(p.Kind)))
}

// Details returns the block shown when the place is loaded.
func (p *Place) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", p.Name)
	fmt.Fprintf(&sb, "*%s*", capitalize(string(p.Kind)))
	if p.Description != "" {
		fmt.Fprintf(&sb, "\n\n%s", p.Description)
	}
	return sb.String()
}

var innAdjectives = []string{
	"Blushing", "Crimson", "Dancing", "Gilded", "Grinning", "Hidden",
	"Leaning", "Lucky", "Prancing", "Silver", "Thirsty", "Wandering",
}

var innNouns = []string{
	"Basilisk", "Boar", "Dragon", "Griffon", "Hound", "Lantern",
	"Mermaid", "Pony", "Rooster", "Stag", "Tankard", "Wyvern",
}

var geoAdjectives = []string{
	"Ashen", "Broken", "Endless", "Howling", "Salt", "Shifting",
	"Silent", "Sunken", "Whispering",
}

// GeneratePlace invents a place of the given kind. If kind is empty, a
// building kind is chosen at random.
func GeneratePlace(rng *rand.Rand, kind PlaceKind) *Place {
	if kind == "" {
		kind = [...]PlaceKind{Inn, Residence, Shop, Temple, Warehouse}[rng.IntN(5)]
	}

	switch kind {
	case Inn:
		name := fmt.Sprintf("The %s %s",
			innAdjectives[rng.IntN(len(innAdjectives))],
			innNouns[rng.IntN(len(innNouns))])
		return &Place{
			Name:        name,
			Kind:        Inn,
			Description: "A roadside establishment offering beds, meals, and gossip.",
		}

	case Beach, Canyon, Desert, Forest, Island, Swamp:
		name := fmt.Sprintf("The %s %s",
			geoAdjectives[rng.IntN(len(geoAdjectives))],
			capitalize(string(kind)))
		return &Place{Name: name, Kind: kind}

	default:
		owner := generateName(rng, Human, [...]Gender{Feminine, Masculine}[rng.IntN(2)])
		given, _, _ := strings.Cut(owner, " ")
		return &Place{
			Name: fmt.Sprintf("%s's %s", given, capitalize(string(kind))),
			Kind: kind,
		}
	}
}
