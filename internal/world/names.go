package world

import "math/rand/v2"

// Name tables, trimmed from period and fantasy name sources. Most
// species map to feminine and masculine given names; warforged have a
// single neutral table, and half-elves borrow human or elven names.
// Surnames exist only where the culture uses them.
var givenNames = map[Species]map[Gender][]string{
	Human: {
		Feminine: {
			"Adelaide", "Agnes", "Beatrice", "Cecily", "Eleanor", "Elspeth",
			"Giselle", "Isabel", "Joan", "Katherine", "Margery", "Matilda",
			"Petronella", "Rohesia", "Sybil", "Winifred",
		},
		Masculine: {
			"Alaric", "Bartholomew", "Cedric", "Drogo", "Edmund", "Geoffrey",
			"Gilbert", "Hugh", "Jocelin", "Lambert", "Osbert", "Piers",
			"Ranulf", "Roger", "Theobald", "Walter",
		},
	},
	Dwarf: {
		Feminine: {
			"Amber", "Bardryn", "Dagnal", "Diesa", "Eldeth", "Gunnloda",
			"Hlin", "Kathra", "Kristryd", "Mardred", "Riswynn", "Torbera",
		},
		Masculine: {
			"Adrik", "Baern", "Darrak", "Eberk", "Fargrim", "Gardain",
			"Harbek", "Kildrak", "Morgran", "Orsik", "Thoradin", "Vondal",
		},
	},
	Elf: {
		Feminine: {
			"Adrie", "Althaea", "Bethrynna", "Caelynn", "Drusilia", "Enna",
			"Ielenia", "Keyleth", "Leshanna", "Meriele", "Quelenna", "Sariel",
			"Shanairra", "Theirastra", "Valanthe", "Xanaphia",
		},
		Masculine: {
			"Adran", "Aelar", "Beiro", "Carric", "Erevan", "Galinndan",
			"Heian", "Immeral", "Laucian", "Mindartis", "Paelias", "Quarion",
			"Riardon", "Soveliss", "Thamior", "Varis",
		},
	},
	Gnome: {
		Feminine: {
			"Bimpnottin", "Caramip", "Duvamil", "Ellywick", "Loopmottin",
			"Mardnab", "Nissa", "Oda", "Roywyn", "Shamil", "Waywocket", "Zanna",
		},
		Masculine: {
			"Alston", "Boddynock", "Dimble", "Fonkin", "Glim", "Jebeddo",
			"Namfoodle", "Roondar", "Seebo", "Warryn", "Wrenn", "Zook",
		},
	},
	Halfling: {
		Feminine: {
			"Andry", "Bree", "Callie", "Cora", "Euphemia", "Jillian",
			"Kithri", "Lavinia", "Merla", "Portia", "Seraphina", "Verna",
		},
		Masculine: {
			"Alton", "Ander", "Cade", "Corrin", "Eldon", "Errich",
			"Finnan", "Garret", "Lindal", "Merric", "Perrin", "Roscoe",
		},
	},
	Tiefling: {
		Feminine: {
			"Akta", "Bryseis", "Criella", "Damaia", "Kallista", "Lerissa",
			"Makaria", "Nemeia", "Orianna", "Phelaia", "Rieta",
		},
		Masculine: {
			"Akmenos", "Amnon", "Barakas", "Damakos", "Ekemon", "Kairon",
			"Leucis", "Melech", "Mordai", "Pelaios", "Therai",
		},
	},
	Dragonborn: {
		Feminine: {
			"Akra", "Biri", "Daar", "Farideh", "Harann", "Jheri",
			"Kava", "Korinn", "Mishann", "Nala", "Perra", "Sora",
		},
		Masculine: {
			"Arjhan", "Balasar", "Bharash", "Donaar", "Ghesh", "Heskan",
			"Kriv", "Medrash", "Nadarr", "Patrin", "Rhogar", "Torinn",
		},
	},
	HalfOrc: {
		Feminine: {
			"Baggi", "Emen", "Engong", "Kansif", "Myev", "Neega",
			"Ovak", "Shautha", "Sutha", "Vola", "Volen", "Yevelda",
		},
		Masculine: {
			"Dench", "Feng", "Gell", "Henk", "Holg", "Imsh",
			"Keth", "Krusk", "Ront", "Shump", "Thokk",
		},
	},
	Warforged: {
		Neutral: {
			"Anchor", "Banner", "Bastion", "Charger", "Crucible", "Five",
			"Lantern", "Mace", "Oak", "Pierce", "Relic", "Sentinel",
			"Slate", "Vault", "Zealot",
		},
	},
}

var surnames = map[Species][]string{
	Human: {
		"Atwood", "Baker", "Carpenter", "Dyer", "Fletcher", "Granger",
		"Hollis", "Mercer", "Porter", "Sutton", "Thatcher", "Webb",
	},
	Dwarf: {
		"Balderk", "Battlehammer", "Dankil", "Fireforge", "Frostbeard",
		"Holderhek", "Ironfist", "Loderr", "Rumnaheim", "Strakeln", "Ungart",
	},
	Elf: {
		"Amakiir", "Amastacia", "Galanodel", "Holimion", "Ilphelkiir",
		"Liadon", "Meliamne", "Nailo", "Siannodel", "Xiloscient",
	},
	Gnome: {
		"Beren", "Daergel", "Folkor", "Garrick", "Nackle", "Murnig",
		"Ningel", "Raulnor", "Scheppen", "Timbers", "Turen",
	},
	Halfling: {
		"Brushgather", "Goodbarrel", "Greenbottle", "High-hill",
		"Hilltopple", "Leagallow", "Tealeaf", "Thorngage", "Tosscobble",
		"Underbough",
	},
	Dragonborn: {
		"Clethtinthiallor", "Daardendrian", "Delmirev", "Drachedandion",
		"Fenkenkabradon", "Kepeshkmolik", "Kerrhylon", "Kimbatuul",
		"Linxakasendalor", "Myastan", "Norixius", "Yarjerit",
	},
}

// generateName invents a name appropriate to the species and gender.
func generateName(rng *rand.Rand, species Species, gender Gender) string {
	tables, ok := givenNames[species]
	if !ok {
		// Mixed-heritage species draw from a parent culture.
		switch species {
		case HalfElf:
			if rng.IntN(2) == 0 {
				tables = givenNames[Human]
			} else {
				tables = givenNames[Elf]
			}
		default:
			tables = givenNames[Human]
		}
	}

	pool, ok := tables[gender]
	if !ok || len(pool) == 0 {
		// Neutral names fall back to the union of the gendered tables.
		if n, okn := tables[Neutral]; okn && len(n) > 0 {
			pool = n
		} else {
			pool = append(append([]string(nil), tables[Feminine]...), tables[Masculine]...)
		}
	}

	given := pool[rng.IntN(len(pool))]
	if fams := surnames[species]; len(fams) > 0 {
		return given + " " + fams[rng.IntN(len(fams))]
	}
	return given
}
