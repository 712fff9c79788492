// Command concord builds a word-frequency concordance from USFM Bible
// translation files. It provides commands for summarizing word frequencies
// and listing the verses a word occurs in.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/WillowConcord/core/analyzer"
	"github.com/FocuswithJustin/WillowConcord/core/concordance"
	"github.com/FocuswithJustin/WillowConcord/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for concord.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`
	Workers   int    `name:"workers" short:"w" help:"Parallel file parses (default: one per CPU)"`

	Analyze AnalyzeCmd `cmd:"" help:"Build a word-frequency table from a file or directory"`
	Refs    RefsCmd    `cmd:"" help:"List the verses a word occurs in"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// initLogging applies the global logging flags.
func initLogging() {
	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

// AnalyzeCmd builds and prints the word-frequency table.
type AnalyzeCmd struct {
	Path  string `arg:"" help:"USFM file or directory to analyze" type:"path"`
	Sort  string `default:"count" enum:"count,word,first" help:"Table order: count, word, or first-seen"`
	Limit int    `short:"n" help:"Show only the top N words (0 = all)"`
	JSON  bool   `help:"Emit the table as JSON"`
}

// wordCount is one row of the frequency table.
type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run() error {
	initLogging()

	words, err := analyzer.AnalyzeWithOptions(c.Path, analyzer.Options{Workers: CLI.Workers})
	if err != nil {
		return err
	}

	rows := make([]wordCount, 0, words.Len())
	for _, word := range words.Words() {
		entry, _ := words.Entry(word)
		rows = append(rows, wordCount{Word: word, Count: entry.Refs.Len()})
	}

	// Rows start in first-seen order, which doubles as the tie-break for
	// the other orderings because the sort is stable.
	switch c.Sort {
	case "count":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	case "word":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Word < rows[j].Word })
	}

	if c.Limit > 0 && len(rows) > c.Limit {
		rows = rows[:c.Limit]
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WORD\tCOUNT")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\n", row.Word, row.Count)
	}
	return w.Flush()
}

// RefsCmd lists every verse a word occurs in.
type RefsCmd struct {
	Path string `arg:"" help:"USFM file or directory to analyze" type:"path"`
	Word string `arg:"" help:"Exact word to look up (no case folding)"`
	Ref  string `help:"Only show this reference, e.g. 'Genesis 1:6'"`
	Text bool   `help:"Include each verse's display text"`
}

// Run executes the refs command.
func (c *RefsCmd) Run() error {
	initLogging()

	words, err := analyzer.AnalyzeWithOptions(c.Path, analyzer.Options{Workers: CLI.Workers})
	if err != nil {
		return err
	}

	entry, ok := words.Entry(c.Word)
	if !ok {
		return fmt.Errorf("word not found: %q", c.Word)
	}

	var filter *concordance.VerseReference
	if c.Ref != "" {
		filter, err = concordance.ParseRef(c.Ref)
		if err != nil {
			return err
		}
	}

	for _, ref := range entry.Refs.Refs() {
		if filter != nil && !ref.Same(filter) {
			continue
		}
		if c.Text {
			fmt.Printf("%s\t%s\n", ref, strings.TrimSpace(ref.Text))
		} else {
			fmt.Println(ref)
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Printf("concord version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("concord"),
		kong.Description("WillowConcord - Word-frequency concordance for USFM corpora"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
