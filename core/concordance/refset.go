package concordance

// RefSet is an insertion-ordered set of verse references. Membership is
// O(1) average via a map keyed on the identity triple, while iteration
// follows first-insert order. The first reference inserted for a given
// (book, chapter, verse) wins; later duplicates are dropped, so a
// duplicate's Source and Text never replace the original's.
type RefSet struct {
	order []*VerseReference
	index map[refKey]struct{}
}

// NewRefSet returns an empty reference set.
func NewRefSet() *RefSet {
	return &RefSet{index: make(map[refKey]struct{})}
}

// Add inserts ref if no equal reference is already present and reports
// whether the insert happened.
func (s *RefSet) Add(ref *VerseReference) bool {
	k := ref.key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.order = append(s.order, ref)
	return true
}

// Contains reports whether an equal reference is already present.
func (s *RefSet) Contains(ref *VerseReference) bool {
	_, ok := s.index[ref.key()]
	return ok
}

// Len returns the number of distinct references.
func (s *RefSet) Len() int {
	return len(s.order)
}

// Refs returns the references in first-insert order. The returned slice
// is the set's backing storage and must not be modified.
func (s *RefSet) Refs() []*VerseReference {
	return s.order
}
