package quality

// Lexicon holds the term lists the assessor matches against. It is
// configuration data fixed at construction; the assessor never mutates it.
type Lexicon struct {
	// GenericTerms are matched as whole tokens. A description made of these
	// alone says nothing that distinguishes one item from another.
	GenericTerms []string

	// SpecificFragments are matched by substring containment so that
	// morphological variants count ("crack" matches "cracked", "engrav"
	// matches "engraved"). Fragment matching is crude on purpose; the lists
	// are tuned against real submissions, not a dictionary.
	SpecificFragments []string
}

// DefaultLexicon returns the production term lists
func DefaultLexicon() Lexicon {
	return Lexicon{
		GenericTerms: []string{
			// Bare colors
			"black", "white", "red", "blue", "green", "yellow", "orange",
			"pink", "purple", "brown", "grey", "gray", "silver", "gold",
			// Bare object nouns
			"phone", "mobile", "wallet", "purse", "bag", "backpack", "bottle",
			"watch", "keys", "key", "book", "laptop", "charger", "earphones",
			"headphones", "umbrella", "card", "spectacles", "glasses",
			// Bare size/condition words
			"small", "big", "large", "tiny", "old", "new", "normal", "regular",
		},
		SpecificFragments: []string{
			"crack", "scratch", "dent", "sticker", "engrav", "serial",
			"model", "custom", "unique", "brand", "chip", "torn", "faded",
		},
	}
}
