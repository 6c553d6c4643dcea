package scroll

const (
	// DefaultMinSyllables is the fewest syllables per word, as hardcoded in Rogue.
	DefaultMinSyllables = 1
	// DefaultMaxSyllables is the most syllables per word, as hardcoded in Rogue.
	DefaultMaxSyllables = 3
	// DefaultMinWords is the fewest words per title, as hardcoded in Rogue.
	DefaultMinWords = 2
	// DefaultMaxWords is the most words per title, as hardcoded in Rogue.
	DefaultMaxWords = 4
	// DefaultConnectorChance is the default percent chance that a title of
	// three or more words carries the connector word.
	DefaultConnectorChance = 10
	// Connector is the fixed joining word occasionally placed in an interior
	// position of longer titles. It does not appear in the default syllabary,
	// so connector titles are recognizable as such.
	Connector = "of"
	// MaxWordLen caps synthesized word length in bytes, after Rogue's MAXNAME.
	// Words stop growing at the last syllable boundary that fits.
	MaxWordLen = 40
)

// rogueSyllables holds the 147 syllables from Rogue's init.c, in their
// original order. "nes" really does appear twice.
var rogueSyllables = []string{
	"a", "ab", "ag", "aks", "ala", "an", "app", "arg", "arze", "ash",
	"bek", "bie", "bit", "bjor", "blu", "bot", "bu", "byt",
	"comp", "con", "cos", "cre",
	"dalf", "dan", "den", "do",
	"e", "eep", "el", "eng", "er", "ere", "erk", "esh", "evs",
	"fa", "fid", "fri", "fu",
	"gan", "gar", "glen", "gop", "gre",
	"ha", "hyd",
	"i", "ing", "ip", "ish", "it", "ite", "iv",
	"jo",
	"kho", "kli", "klis",
	"la", "lech",
	"mar", "me", "mi", "mic", "mik", "mon", "mung", "mur",
	"nej", "nelg", "nep", "ner", "nes", "nes", "nih", "nin",
	"o", "od", "ood", "org", "orn", "ox", "oxy",
	"pay", "ple", "plu", "po", "pot", "prok",
	"re", "rea", "rhov", "ri", "ro", "rog", "rok", "rol",
	"sa", "san", "sat", "sef", "seh", "shu", "ski", "sna", "sne", "snik",
	"sno", "so", "sol", "sri", "sta", "sun",
	"ta", "tab", "tem", "ther", "ti", "tox", "trol", "tue", "turs",
	"u", "ulk", "um", "un", "uni", "ur",
	"val", "viv", "vly", "vom",
	"wah", "wed", "werg", "wex", "whon", "wun",
	"xo",
	"y", "yot", "yu",
	"zant", "zeb", "zim", "zok", "zon", "zum",
}

// rogueKinds holds the eighteen scroll kinds and their chances out of 100,
// from the scr_info table in Rogue's extern.c.
var rogueKinds = []Entry{
	{Text: "monster confusion", Weight: 7},
	{Text: "magic mapping", Weight: 4},
	{Text: "hold monster", Weight: 2},
	{Text: "sleep", Weight: 3},
	{Text: "enchant armor", Weight: 7},
	{Text: "identify potion", Weight: 10},
	{Text: "identify scroll", Weight: 10},
	{Text: "identify weapon", Weight: 6},
	{Text: "identify armor", Weight: 7},
	{Text: "identify ring, wand or staff", Weight: 10},
	{Text: "scare monster", Weight: 3},
	{Text: "food detection", Weight: 2},
	{Text: "teleportation", Weight: 5},
	{Text: "enchant weapon", Weight: 8},
	{Text: "create monster", Weight: 4},
	{Text: "remove curse", Weight: 7},
	{Text: "aggravate monsters", Weight: 3},
	{Text: "protect armor", Weight: 2},
}

var (
	defaultSyllabary = mustTable(NewUniformTable(rogueSyllables))
	defaultKinds     = mustTable(NewTable(rogueKinds))
)

// mustTable unwraps table construction for data known to be valid.
func mustTable(t *Table, err error) *Table {
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSyllabary returns the table words are synthesized from when no
// custom syllabary is configured: Rogue's 147 syllables, uniformly weighted.
func DefaultSyllabary() *Table {
	return defaultSyllabary
}

// DefaultKinds returns the classic scroll kinds with their Rogue selection
// weights.
func DefaultKinds() *Table {
	return defaultKinds
}
