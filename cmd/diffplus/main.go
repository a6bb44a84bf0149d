// Command diffplus compares two files and renders the differences in one of
// four views: unified (default), side-by-side, inline, or statistics-only.
//
// Usage:
//
//	diffplus file1 file2
//	diffplus -s --word-diff file1 file2
//	diffplus --stats file1 file2
package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/dacharyc/diffplus"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Exit codes
const (
	exitIdentical = 0 // files are identical
	exitDiffer    = 1 // files differ
	exitError     = 2 // error occurred
)

// cliFlags holds all parsed command-line flags
type cliFlags struct {
	side             *bool
	inline           *bool
	stats            *bool
	lang             *string
	lineNumbers      *bool
	context          *int
	width            *int
	ignoreWhitespace *bool
	ignoreCase       *bool
	wordDiff         *bool
	noColor          *bool
	quiet            *bool
	help             *bool
	version          *bool
}

// defineFlags sets up all command-line flags
func defineFlags() cliFlags {
	f := cliFlags{
		side:             flag.BoolP("side", "s", false, "side-by-side view"),
		inline:           flag.BoolP("inline", "i", false, "inline/compact view"),
		stats:            flag.Bool("stats", false, "show statistics only"),
		lang:             flag.StringP("lang", "l", "", "language tag for the display layer (auto-detected if not specified)"),
		lineNumbers:      flag.BoolP("line-numbers", "n", false, "show line numbers"),
		context:          flag.IntP("context", "c", diffplus.DefaultContext, "number of context lines in unified view"),
		width:            flag.Int("width", 0, "total width of the side-by-side view (0 for default)"),
		ignoreWhitespace: flag.BoolP("ignore-whitespace", "w", false, "ignore leading/trailing whitespace differences"),
		ignoreCase:       flag.Bool("ignore-case", false, "ignore case differences"),
		wordDiff:         flag.Bool("word-diff", false, "show word-level differences (side-by-side view only)"),
		noColor:          flag.Bool("no-color", false, "disable colored output"),
		quiet:            flag.BoolP("quiet", "q", false, "quiet mode - only signal whether files differ"),
		help:             flag.BoolP("help", "h", false, "show help"),
		version:          flag.BoolP("version", "v", false, "show version"),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file1 file2\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCompare two files with multiple view modes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s old.txt new.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -s -n old.go new.go\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --stats old.txt new.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -w --word-diff -s old.md new.md\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  files are identical\n")
		fmt.Fprintf(os.Stderr, "  1  files differ\n")
		fmt.Fprintf(os.Stderr, "  2  error occurred\n")
	}

	return f
}

// decodeText decodes file bytes as UTF-8, falling back to Windows-1252 and
// then Latin-1, mirroring the usual text-tool encoding ladder.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		if decoded, err := cm.NewDecoder().Bytes(data); err == nil {
			return string(decoded), nil
		}
	}
	return "", errors.New("could not decode with any supported encoding")
}

// splitLines splits decoded text into newline-stripped lines. A trailing
// newline does not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// readFile reads a file into a line sequence with encoding fallback.
func readFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// formatSize renders a byte count in human-readable form with 1024-based
// units: plain bytes below 1 KB, then one decimal of KB or MB.
func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
	}
}

// fileInfo returns the formatted size of a file, or "N/A" when the file
// cannot be stat'd.
func fileInfo(path string) string {
	st, err := os.Stat(path)
	if err != nil {
		return "N/A"
	}
	return formatSize(st.Size())
}

// buildOptions maps flags to validated diff options.
func buildOptions(f cliFlags) (diffplus.Options, error) {
	return diffplus.NewOptions(diffplus.Options{
		Context:          *f.context,
		IgnoreWhitespace: *f.ignoreWhitespace,
		IgnoreCase:       *f.ignoreCase,
		ShowLineNumbers:  *f.lineNumbers,
		WordDiff:         *f.wordDiff,
		Width:            *f.width,
	})
}

func main() {
	f := defineFlags()
	flag.Parse()

	if *f.help {
		flag.Usage()
		os.Exit(exitIdentical)
	}
	if *f.version {
		fmt.Printf("diffplus %s\n", Version)
		os.Exit(exitIdentical)
	}

	modes := 0
	for _, m := range []bool{*f.side, *f.inline, *f.stats} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		fmt.Fprintln(os.Stderr, "Error: --side, --inline, and --stats are mutually exclusive")
		os.Exit(exitError)
	}

	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: requires two file arguments")
		flag.Usage()
		os.Exit(exitError)
	}
	aName, bName := flag.Arg(0), flag.Arg(1)

	opts, err := buildOptions(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	aLines, err := readFile(aName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", aName, err)
		os.Exit(exitError)
	}
	bLines, err := readFile(bName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", bName, err)
		os.Exit(exitError)
	}

	if slices.Equal(aLines, bLines) {
		if !*f.quiet {
			fmt.Println("Files are identical")
		}
		os.Exit(exitIdentical)
	}

	if *f.quiet {
		os.Exit(exitDiffer)
	}

	res := diffplus.Compute(aLines, bLines, aName, bName, opts)
	res.Lang = *f.lang
	if res.Lang == "" {
		res.Lang = diffplus.DetectLanguage(aName)
	}
	res.AInfo = fileInfo(aName)
	res.BInfo = fileInfo(bName)

	sink := diffplus.NewTermSink(os.Stdout, *f.noColor)

	switch {
	case *f.stats:
		diffplus.RenderStats(sink, res, diffplus.ComputeStats(res))
	case *f.side:
		diffplus.RenderSideBySide(sink, res, opts)
		printQuickStats(sink, res)
	case *f.inline:
		diffplus.RenderInline(sink, res, opts)
		printQuickStats(sink, res)
	default:
		diffplus.RenderUnified(sink, res, opts)
		printQuickStats(sink, res)
	}

	os.Exit(exitDiffer)
}

// printQuickStats emits the one-line change summary shown after the
// line-oriented views.
func printQuickStats(sink diffplus.Sink, res diffplus.Result) {
	st := diffplus.ComputeStats(res)
	sink.Emit(diffplus.Instruction{
		Role: diffplus.RoleContext,
		Fragments: []diffplus.Fragment{{
			Text: fmt.Sprintf("Changes: +%d -%d ~%d | Similarity: %.1f%%",
				st.Additions, st.Deletions, st.Modifications, st.Similarity),
			Style: diffplus.StyleDim,
		}},
	})
}
