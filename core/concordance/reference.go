// Package concordance defines the word-frequency data model: verse
// references, per-word reference sets, and the word-to-entry mapping
// produced by analyzing a USFM corpus.
package concordance

import "fmt"

// VerseReference identifies one verse occurrence of a word.
type VerseReference struct {
	// Book is the book name captured from the most recent heading line.
	Book string

	// Chapter is the chapter number captured from the most recent chapter marker.
	Chapter int

	// Verse is the verse number captured from the most recent verse marker.
	Verse int

	// Source locates the originating file. Not part of identity.
	Source string

	// Text is the verse line with footnotes, markers, and digit runs
	// stripped but punctuation retained, for display and highlighting.
	// Not part of identity.
	Text string
}

// String renders the canonical display form, e.g. "Genesis 1:6".
func (r *VerseReference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// refKey is the identity of a reference: book, chapter, and verse only.
// Source and Text are deliberately excluded so that the same coordinates
// seen twice collapse to a single entry.
type refKey struct {
	book    string
	chapter int
	verse   int
}

func (r *VerseReference) key() refKey {
	return refKey{book: r.Book, chapter: r.Chapter, verse: r.Verse}
}

// Same reports whether two references are equal under the identity rule.
func (r *VerseReference) Same(other *VerseReference) bool {
	if other == nil {
		return false
	}
	return r.key() == other.key()
}
