package concordance

// WordEntry holds one distinct word and every verse it occurs in.
// The word is the exact token as extracted: no case folding, no stemming.
type WordEntry struct {
	Word string
	Refs *RefSet
}

// Concordance maps each word to its entry. Word iteration order is the
// order words were first discovered, which keeps output deterministic and
// gives a stable tie-break for equal frequencies.
type Concordance struct {
	order   []string
	entries map[string]*WordEntry
}

// New returns an empty concordance.
func New() *Concordance {
	return &Concordance{entries: make(map[string]*WordEntry)}
}

// Add records one occurrence of word at ref, creating the entry on first
// sight and otherwise inserting the reference only if it is new.
func (c *Concordance) Add(word string, ref *VerseReference) {
	entry, ok := c.entries[word]
	if !ok {
		entry = &WordEntry{Word: word, Refs: NewRefSet()}
		c.entries[word] = entry
		c.order = append(c.order, word)
	}
	entry.Refs.Add(ref)
}

// Entry returns the entry for word, if present.
func (c *Concordance) Entry(word string) (*WordEntry, bool) {
	entry, ok := c.entries[word]
	return entry, ok
}

// Words returns all words in first-discovered order. The returned slice
// is the concordance's backing storage and must not be modified.
func (c *Concordance) Words() []string {
	return c.order
}

// Len returns the number of distinct words.
func (c *Concordance) Len() int {
	return len(c.entries)
}

// Merge folds other into c. New words transfer their whole entry,
// preserving other's reference order as the initial order for that word;
// existing words append only references not already present. Ownership of
// other's entries moves to c, so other must not be used afterwards.
func (c *Concordance) Merge(other *Concordance) {
	for _, word := range other.order {
		incoming := other.entries[word]
		entry, ok := c.entries[word]
		if !ok {
			c.entries[word] = incoming
			c.order = append(c.order, word)
			continue
		}
		for _, ref := range incoming.Refs.Refs() {
			entry.Refs.Add(ref)
		}
	}
}
