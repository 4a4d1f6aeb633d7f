package rank

// Standard returns the Gods & Kings reference table. Values come from the
// upstream force-rating document and are fixed at build time.
func Standard() *Table {
	return NewTable(standardEntries)
}

var standardEntries = []Entry{
	{"Scout", 13},
	{"Archer", 19},
	{"Slinger", 19},
	{"Dromon", 23},
	{"Warrior", 27},
	{"Maori Warrior", 27},
	{"Brute", 27},
	{"Bowman", 29},
	{"Jaguar", 36},
	{"Catapult", 39},
	{"Composite Bowman", 39},
	{"Galleass", 41},
	{"Chariot Archer", 42},
	{"War Elephant", 44},
	{"War Chariot", 45},
	{"Horse Archer", 45},
	{"Trireme", 46},
	{"Spearman", 49},
	{"Ballista", 55},
	{"Persian Immortal", 56},
	{"Horseman", 62},
	{"Hoplite", 63},
	{"Swordsman", 64},
	{"Chu-Ko-Nu", 66},
	{"Quinquereme", 69},
	{"African Forest Elephant", 72},
	{"Battering Ram", 80},
	{"Cataphract", 80},
	{"Crossbowman", 81},
	{"Longbowman", 81},
	{"Companion Cavalry", 84},
	{"Legion", 86},
	{"Mohawk Warrior", 86},
	{"Pikeman", 87},
	{"Landsknecht", 87},
	{"Trebuchet", 88},
	{"Keshik", 89},
	{"Frigate", 100},
	{"Hwach'a", 110},
	{"Longswordsman", 118},
	{"Camel Archer", 124},
	{"Samurai", 126},
	{"Berserker", 133},
	{"Knight", 134},
	{"Conquistador", 134},
	{"Mandekalu Cavalry", 134},
	{"Caravel", 134},
	{"Ship of the Line", 139},
	{"Musketman", 144},
	{"Cannon", 151},
	{"Minuteman", 154},
	{"Janissary", 162},
	{"Gatling Gun", 169},
	{"Musketeer", 182},
	{"Tercio", 182},
	{"Naresuan's Elephant", 194},
	{"Lancer", 204},
	{"Hakkapeliitta", 204},
	{"Sipahi", 218},
	{"Privateer", 222},
	{"Rifleman", 243},
	{"Carolean", 243},
	{"Sea Beggar", 244},
	{"Artillery", 245},
	{"Battleship", 269},
	{"Great War Bomber", 290},
	{"Cavalry", 300},
	{"Hussar", 320},
	{"Triplane", 325},
	{"Turtle Ship", 327},
	{"Cossack", 337},
	{"Norwegian Ski Infantry", 345},
	{"Guided Missile", 378},
	{"Carrier", 408},
	{"Submarine", 420},
	{"Bomber", 425},
	{"Great War Infantry", 434},
	{"Machine Gun", 465},
	{"Fighter", 470},
	{"Foreign Legion", 477},
	{"Ironclad", 486},
	{"Zero", 508},
	{"Anti-Tank Gun", 542},
	{"B17", 551},
	{"Marine", 645},
	{"Landship", 703},
	{"Infantry", 720},
	{"Nuclear Submarine", 735},
	{"Stealth Bomber", 771},
	{"Paratrooper", 806},
	{"Anti-Aircraft Gun", 819},
	{"Destroyer", 870},
	{"Missile Cruiser", 888},
	{"Rocket Artillery", 930},
	{"Tank", 948},
	{"Jet Fighter", 988},
	{"Helicopter Gunship", 992},
	{"Mechanized Infantry", 1186},
	{"Panzer", 1223},
	{"Mobile SAM", 1376},
	{"Modern Armor", 1620},
	{"Giant Death Robot", 2977},
	{"Atomic Bomb", 4714},
	{"Nuclear Missile", 7906},
}
