package diffplus

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Side-by-side layout constants. Cells are padded with go-runewidth so wide
// runes (CJK, emoji) keep the columns aligned.
const (
	sbsGutterWidth  = 2     // change marker plus one space
	sbsNumWidth     = 5     // "%4d " when line numbers are on
	sbsSeparator    = " | " // between the A and B columns
	sbsMinCellWidth = 8
)

// RenderSideBySide emits a two-column layout: Equal spans fill both columns,
// Delete spans fill only the left, Insert spans only the right, and Replace
// spans pair A and B lines positionally (blank cells once one side runs
// out). With opts.WordDiff set, paired rows where both cells are non-empty
// delegate to the word-diff highlighter instead of whole-line styling.
func RenderSideBySide(sink Sink, res Result, opts Options) {
	l := newSbsLayout(opts)

	sink.Emit(plain(RoleHeader, l.headerRow(annotate(res.AName, res.AInfo), annotate(res.BName, res.BInfo))))

	for _, s := range res.Spans {
		switch s.Kind {
		case Equal:
			// Lines may differ in the originals when normalization
			// folded them equal, so each column shows its own side.
			for i := 0; i < s.AEnd-s.AStart; i++ {
				sink.Emit(l.row(RoleContext,
					cellText(res.A[s.AStart+i], " ", s.AStart+i+1),
					cellText(res.B[s.BStart+i], " ", s.BStart+i+1)))
			}
		case Delete:
			for i, line := range res.A[s.AStart:s.AEnd] {
				sink.Emit(l.row(RoleRemoved,
					styledCell(line, StyleRemoved, "-", s.AStart+i+1),
					blankCell()))
			}
		case Insert:
			for i, line := range res.B[s.BStart:s.BEnd] {
				sink.Emit(l.row(RoleAdded,
					blankCell(),
					styledCell(line, StyleAdded, "+", s.BStart+i+1)))
			}
		case Replace:
			l.emitReplaceRows(sink, res, s, opts)
		}
	}
}

// emitReplaceRows renders max(|a-range|,|b-range|) rows for one Replace
// span, pairing lines positionally.
func (l sbsLayout) emitReplaceRows(sink Sink, res Result, s EditSpan, opts Options) {
	aLines := res.A[s.AStart:s.AEnd]
	bLines := res.B[s.BStart:s.BEnd]

	for idx := 0; idx < max(len(aLines), len(bLines)); idx++ {
		var aLine, bLine string
		if idx < len(aLines) {
			aLine = aLines[idx]
		}
		if idx < len(bLines) {
			bLine = bLines[idx]
		}

		left := blankCell()
		right := blankCell()

		if opts.WordDiff && aLine != "" && bLine != "" {
			oldFrags, newFrags := HighlightWordDiff(aLine, bLine)
			left = sbsCell{frags: oldFrags, marker: "~", num: s.AStart + idx + 1}
			right = sbsCell{frags: newFrags, marker: "~", num: s.BStart + idx + 1}
		} else {
			if idx < len(aLines) {
				left = styledCell(aLine, StyleRemoved, "~", s.AStart+idx+1)
			}
			if idx < len(bLines) {
				right = styledCell(bLine, StyleAdded, "~", s.BStart+idx+1)
			}
		}

		sink.Emit(l.row(RoleModified, left, right))
	}
}

// sbsCell is one column cell before padding: content fragments, the gutter
// marker, and the 1-based line number (0 for blank cells).
type sbsCell struct {
	frags  []Fragment
	marker string
	num    int
}

func blankCell() sbsCell {
	return sbsCell{}
}

func cellText(line, marker string, num int) sbsCell {
	return sbsCell{frags: []Fragment{{Text: line}}, marker: marker, num: num}
}

func styledCell(line string, style FragStyle, marker string, num int) sbsCell {
	return sbsCell{frags: []Fragment{{Text: line, Style: style}}, marker: marker, num: num}
}

// sbsLayout holds the computed column geometry for one rendering call.
type sbsLayout struct {
	showNums  bool
	cellWidth int
}

func newSbsLayout(opts Options) sbsLayout {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	fixed := len(sbsSeparator) + 2*sbsGutterWidth
	if opts.ShowLineNumbers {
		fixed += 2 * sbsNumWidth
	}
	cell := (width - fixed) / 2
	if cell < sbsMinCellWidth {
		cell = sbsMinCellWidth
	}
	return sbsLayout{showNums: opts.ShowLineNumbers, cellWidth: cell}
}

// annotate appends a per-file annotation to a header name.
func annotate(name, info string) string {
	if info == "" {
		return name
	}
	return name + " (" + info + ")"
}

// headerRow lays the two file names out over their columns.
func (l sbsLayout) headerRow(aName, bName string) string {
	lead := sbsGutterWidth
	if l.showNums {
		lead += sbsNumWidth
	}
	pad := strings.Repeat(" ", lead)
	return pad + runewidth.FillRight(runewidth.Truncate(aName, l.cellWidth, "…"), l.cellWidth) +
		sbsSeparator + pad + runewidth.Truncate(bName, l.cellWidth, "…")
}

// row assembles one padded two-column instruction.
func (l sbsLayout) row(role Role, left, right sbsCell) Instruction {
	var frags []Fragment
	frags = l.appendCell(frags, left)
	frags = append(frags, Fragment{Text: sbsSeparator})
	frags = l.appendCell(frags, right)
	return Instruction{Role: role, Fragments: frags}
}

// appendCell appends number, gutter, and width-padded content fragments for
// one cell.
func (l sbsLayout) appendCell(frags []Fragment, c sbsCell) []Fragment {
	if l.showNums {
		num := strings.Repeat(" ", sbsNumWidth)
		if c.num > 0 {
			num = fmt.Sprintf("%4d ", c.num)
		}
		frags = append(frags, Fragment{Text: num, Style: StyleDim})
	}

	marker := c.marker
	if marker == "" {
		marker = " "
	}
	frags = append(frags, Fragment{Text: marker + " ", Style: StyleDim})

	return appendPadded(frags, c.frags, l.cellWidth)
}

// appendPadded appends content fragments padded (or, for a single plain
// fragment, truncated) to the cell width. Multi-fragment content wider than
// the cell is left intact rather than cut mid-fragment.
func appendPadded(frags []Fragment, content []Fragment, width int) []Fragment {
	total := 0
	for _, f := range content {
		total += runewidth.StringWidth(f.Text)
	}

	if total > width && len(content) == 1 {
		return append(frags, Fragment{
			Text:  runewidth.Truncate(content[0].Text, width, "…"),
			Style: content[0].Style,
		})
	}

	frags = append(frags, content...)
	if total < width {
		frags = append(frags, Fragment{Text: strings.Repeat(" ", width-total)})
	}
	return frags
}
