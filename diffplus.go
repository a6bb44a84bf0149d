// Package diffplus compares two sequences of text lines and renders the
// differences in several human-readable layouts.
//
// The pipeline is deliberately simple and one-directional: raw lines are
// normalized per Options, the normalized sequences are aligned into a single
// edit script (an ordered list of typed spans), and that one script is then
// consumed by four independent renderers (unified, side-by-side, inline, and
// stats-only) plus a statistics pass. Renderers read the original,
// unnormalized lines for display; normalization affects comparison only.
//
// For example, comparing:
//
//	a b c
//	a x c
//
// line by line produces Equal/Replace/Equal spans, and the side-by-side view
// can additionally re-run the same alignment at word granularity inside the
// Replace span to highlight exactly which words changed.
package diffplus

import (
	"errors"
	"fmt"
)

// Op represents an edit operation kind in an edit script.
type Op int

const (
	// Equal indicates a run of lines present in both sequences.
	Equal Op = iota
	// Insert indicates a run of lines present only in B.
	Insert
	// Delete indicates a run of lines present only in A.
	Delete
	// Replace indicates a run in A replaced by a run in B.
	Replace
)

// String returns a human-readable representation of the operation.
func (o Op) String() string {
	switch o {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	case Replace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// EditSpan describes one typed span of an edit script. The index ranges
// [AStart,AEnd) and [BStart,BEnd) are half-open and refer to sequence A and
// B respectively. Spans are produced in strictly increasing, contiguous
// order: the concatenation of all A ranges reconstructs [0,len(A)) and
// likewise for B. Insert spans have AStart == AEnd; Delete spans have
// BStart == BEnd.
type EditSpan struct {
	Kind   Op
	AStart int
	AEnd   int
	BStart int
	BEnd   int
}

// ErrInvalidOption is returned by NewOptions when an option value is out of
// range. Validation happens at construction time; the alignment and
// rendering functions assume well-formed options.
var ErrInvalidOption = errors.New("invalid option")

// DefaultContext is the number of unchanged context lines shown around each
// change in the unified view.
const DefaultContext = 3

// DefaultWidth is the total column budget for the side-by-side view when
// Options.Width is zero.
const DefaultWidth = 80

// Options configures preprocessing and rendering behavior.
type Options struct {
	// Context is the number of unchanged lines shown around each changed
	// region in the unified view.
	Context int

	// IgnoreWhitespace strips leading and trailing whitespace from each
	// line before comparison. Display output keeps the original lines.
	IgnoreWhitespace bool

	// IgnoreCase lowercases lines before comparison. Display output keeps
	// the original lines.
	IgnoreCase bool

	// ShowLineNumbers enables per-side 1-based line numbers in the
	// unified, side-by-side, and inline views.
	ShowLineNumbers bool

	// WordDiff enables word-level highlighting inside Replace spans.
	// Side-by-side view only.
	WordDiff bool

	// Width is the total character budget for the side-by-side view.
	// Zero means DefaultWidth.
	Width int
}

// DefaultOptions returns Options with default settings.
func DefaultOptions() Options {
	return Options{Context: DefaultContext}
}

// NewOptions validates and returns an Options value. It is the single place
// where option values are range-checked; core functions never validate
// mid-algorithm.
func NewOptions(opts Options) (Options, error) {
	if opts.Context < 0 {
		return Options{}, fmt.Errorf("%w: context must be non-negative, got %d", ErrInvalidOption, opts.Context)
	}
	if opts.Width < 0 {
		return Options{}, fmt.Errorf("%w: width must be non-negative, got %d", ErrInvalidOption, opts.Width)
	}
	return opts, nil
}

// Result holds a computed edit script together with the original
// (unnormalized) sequences it refers to. The script indexes into A and B;
// renderers and the stats pass read the original lines for display text.
type Result struct {
	Spans []EditSpan
	A     []string
	B     []string
	AName string
	BName string

	// Lang is an opaque language tag carried through to the display
	// layer. The core never interprets it.
	Lang string

	// AInfo and BInfo are opaque per-file annotations (typically the
	// formatted file size) shown next to the file names in the stats and
	// side-by-side views. Empty annotations are omitted from output.
	AInfo string
	BInfo string
}

// Compute normalizes both sequences per opts, aligns the normalized
// sequences, and returns the edit script paired with the original lines.
func Compute(a, b []string, aName, bName string, opts Options) Result {
	spans := Align(Normalize(a, opts), Normalize(b, opts))
	return Result{
		Spans: spans,
		A:     a,
		B:     b,
		AName: aName,
		BName: bName,
	}
}

// HasChanges returns true if the span list contains any non-Equal spans.
func HasChanges(spans []EditSpan) bool {
	for _, s := range spans {
		if s.Kind != Equal {
			return true
		}
	}
	return false
}
