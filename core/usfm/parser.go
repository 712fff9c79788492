// Package usfm extracts a file-local word concordance from USFM-marked
// Bible translation text. Parsing is line oriented: heading, chapter, and
// verse markers update a small state value that persists across lines, and
// every line at or after the first verse marker is cleaned of markup and
// split into word tokens.
package usfm

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/WillowConcord/core/concordance"
	apperrors "github.com/FocuswithJustin/WillowConcord/core/errors"
	"github.com/FocuswithJustin/WillowConcord/internal/logging"
)

// USFM parsing helpers. Unmatched or malformed markers simply fail to match
// and are left as literal text; the parser is tolerant by construction.
var (
	headingRegex  = regexp.MustCompile(`^\\h (.*)$`)
	chapterRegex  = regexp.MustCompile(`^\\c (.*)$`)
	verseRegex    = regexp.MustCompile(`^\\v (\d+) (.*)$`)
	footnoteRegex = regexp.MustCompile(`\\f(.*?)\\f\*`)
	markerRegex   = regexp.MustCompile(`\\\w+\d*`)
	numberRegex   = regexp.MustCompile(`\d+`)
	punctRegex    = regexp.MustCompile(`[\[\]*+?!()"',.:;—]+`)
)

// maxLineSize bounds a single USFM line. Some translations put a whole
// paragraph on one line, so this is well above the bufio default.
const maxLineSize = 4 * 1024 * 1024

// state carries the document context accumulated while scanning lines.
// All three fields persist until overwritten; they never reset mid-file.
type state struct {
	book    string
	chapter string
	verse   string
}

// Result is one file's parse output.
type Result struct {
	// Path is the file that was parsed.
	Path string

	// Digest is the BLAKE3 hash of the raw file bytes, hex encoded.
	Digest string

	// Words is the file-local concordance.
	Words *concordance.Concordance
}

// ParseFile reads and parses one USFM file. A read failure or invalid
// UTF-8 content is fatal for the file; there is no partial result.
func ParseFile(path string) (*Result, error) {
	begin := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewIO("read", path, err)
	}
	if !utf8.Valid(data) {
		return nil, apperrors.NewDecode(path, nil)
	}

	words, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	sum := blake3.Sum256(data)
	result := &Result{
		Path:   path,
		Digest: hex.EncodeToString(sum[:]),
		Words:  words,
	}

	logging.FileParsed(path, words.Len(), time.Since(begin))
	return result, nil
}

// Parse extracts a concordance from USFM text. It is a pure function of
// the content: no state is shared with any other parse. The source string
// is recorded on every reference as its file locator.
func Parse(data []byte, source string) (*concordance.Concordance, error) {
	words := concordance.New()

	var st state
	lineNum := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Heading: capture the book name, nothing else on this line.
		if m := headingRegex.FindStringSubmatch(line); m != nil {
			st.book = m[1]
			continue
		}

		// Chapter: capture the chapter text, nothing else on this line.
		if m := chapterRegex.FindStringSubmatch(line); m != nil {
			st.chapter = m[1]
			continue
		}

		// Verse: capture the number, but keep scanning the line; the text
		// after the marker contributes words to this verse.
		if m := verseRegex.FindStringSubmatch(line); m != nil {
			st.verse = m[1]
		}

		// Front matter before the first chapter/verse contributes no words.
		if st.chapter == "" || st.verse == "" {
			continue
		}

		// Clean up non-words. The text after digit stripping, punctuation
		// still intact, is the display form kept on each reference.
		cleaned := footnoteRegex.ReplaceAllString(line, " ")
		cleaned = markerRegex.ReplaceAllString(cleaned, " ")
		cleaned = numberRegex.ReplaceAllString(cleaned, " ")
		display := cleaned
		cleaned = strings.TrimSpace(punctRegex.ReplaceAllString(cleaned, " "))
		if cleaned == "" {
			continue
		}

		chapter, err := strconv.Atoi(strings.TrimSpace(st.chapter))
		if err != nil {
			return nil, apperrors.NewParse(source, lineNum, fmt.Sprintf("chapter is not a number: %q", st.chapter))
		}
		verse, err := strconv.Atoi(st.verse)
		if err != nil {
			return nil, apperrors.NewParse(source, lineNum, fmt.Sprintf("verse is not a number: %q", st.verse))
		}

		for _, word := range strings.Fields(cleaned) {
			words.Add(word, &concordance.VerseReference{
				Book:    st.book,
				Chapter: chapter,
				Verse:   verse,
				Source:  source,
				Text:    display,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewDecode(source, err)
	}

	return words, nil
}
