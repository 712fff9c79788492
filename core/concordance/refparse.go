package concordance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// refGrammar is the participle grammar for display-form references as
// rendered by VerseReference.String(), e.g. "Genesis 1:6", "1 Samuel 2:3",
// "Song of Solomon 1:1". The book name is free text and may itself contain
// numbers, so the grammar accepts a sequence of words and numbers and the
// final chapter:verse pair is resolved afterwards.
type refGrammar struct {
	Parts []refPart `parser:"@@+"`
}

type refPart struct {
	Word string   `parser:"  @Ident"`
	Num  *refPair `parser:"| @@"`
}

type refPair struct {
	Number int  `parser:"@Int"`
	Verse  *int `parser:"( \":\" @Int )?"`
}

// refLexer defines the lexer for display-form references.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[^\s0-9:]+`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// refParser is the participle parser for display-form references.
var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseRef parses a "Book Chapter:Verse" display string into a reference
// with only the identity fields set. Supported forms:
//   - "Genesis 1:6"
//   - "1 Samuel 2:3" (numeric book prefix)
//   - "Song of Solomon 1:1" (multi-word book name)
func ParseRef(s string) (*VerseReference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty reference string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid reference format: %q: %w", s, err)
	}

	parts := parsed.Parts
	last := parts[len(parts)-1]
	if last.Num == nil || last.Num.Verse == nil {
		return nil, fmt.Errorf("invalid reference format: %q: missing chapter:verse", s)
	}

	// Everything before the final chapter:verse pair is the book name.
	var bookParts []string
	for _, part := range parts[:len(parts)-1] {
		switch {
		case part.Num != nil && part.Num.Verse != nil:
			return nil, fmt.Errorf("invalid reference format: %q: multiple chapter:verse pairs", s)
		case part.Num != nil:
			bookParts = append(bookParts, strconv.Itoa(part.Num.Number))
		default:
			bookParts = append(bookParts, part.Word)
		}
	}
	if len(bookParts) == 0 {
		return nil, fmt.Errorf("invalid reference format: %q: missing book name", s)
	}

	return &VerseReference{
		Book:    strings.Join(bookParts, " "),
		Chapter: last.Num.Number,
		Verse:   *last.Num.Verse,
	}, nil
}
