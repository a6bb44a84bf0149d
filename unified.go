package diffplus

import "fmt"

// RenderUnified emits a contextual patch-style transcript: "---"/"+++"
// header lines, then hunks of up to opts.Context unchanged lines around each
// changed region. Changed regions closer than 2*Context lines are merged
// into one hunk; context is clipped at sequence boundaries. Identical
// sequences produce no output at all.
func RenderUnified(sink Sink, res Result, opts Options) {
	groups := groupSpans(res.Spans, opts.Context)
	if len(groups) == 0 {
		return
	}

	sink.Emit(plain(RoleHeader, "--- "+res.AName))
	sink.Emit(plain(RoleHeader, "+++ "+res.BName))

	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		sink.Emit(plain(RoleHunk, fmt.Sprintf("@@ -%s +%s @@",
			formatRangeUnified(first.AStart, last.AEnd),
			formatRangeUnified(first.BStart, last.BEnd))))

		for _, s := range group {
			switch s.Kind {
			case Equal:
				for i, line := range res.A[s.AStart:s.AEnd] {
					sink.Emit(numbered(RoleContext, " "+line, s.AStart+i+1, opts))
				}
			case Delete:
				emitUnifiedRemoved(sink, res.A[s.AStart:s.AEnd], s.AStart, opts)
			case Insert:
				emitUnifiedAdded(sink, res.B[s.BStart:s.BEnd], s.BStart, opts)
			case Replace:
				emitUnifiedRemoved(sink, res.A[s.AStart:s.AEnd], s.AStart, opts)
				emitUnifiedAdded(sink, res.B[s.BStart:s.BEnd], s.BStart, opts)
			}
		}
	}
}

func emitUnifiedRemoved(sink Sink, lines []string, start int, opts Options) {
	for i, line := range lines {
		sink.Emit(numbered(RoleRemoved, "-"+line, start+i+1, opts))
	}
}

func emitUnifiedAdded(sink Sink, lines []string, start int, opts Options) {
	for i, line := range lines {
		sink.Emit(numbered(RoleAdded, "+"+line, start+i+1, opts))
	}
}

// numbered builds a line instruction, prefixed with a dimmed 1-based line
// number when the option is set.
func numbered(role Role, text string, num int, opts Options) Instruction {
	if !opts.ShowLineNumbers {
		return plain(role, text)
	}
	return Instruction{Role: role, Fragments: []Fragment{
		{Text: fmt.Sprintf("%4d ", num), Style: StyleDim},
		{Text: text},
	}}
}

// groupSpans isolates change clusters, returning per-hunk span groups with
// up to context lines of Equal padding around each cluster. Equal runs
// longer than 2*context end the current hunk and start the next one.
func groupSpans(spans []EditSpan, context int) [][]EditSpan {
	if len(spans) == 0 {
		return nil
	}

	codes := make([]EditSpan, len(spans))
	copy(codes, spans)

	// Clip leading and trailing Equal runs to the context width.
	if c := codes[0]; c.Kind == Equal {
		codes[0] = EditSpan{Equal, max(c.AStart, c.AEnd-context), c.AEnd, max(c.BStart, c.BEnd-context), c.BEnd}
	}
	if c := codes[len(codes)-1]; c.Kind == Equal {
		codes[len(codes)-1] = EditSpan{Equal, c.AStart, min(c.AEnd, c.AStart+context), c.BStart, min(c.BEnd, c.BStart+context)}
	}

	nn := context + context
	var groups [][]EditSpan
	var group []EditSpan
	for _, c := range codes {
		if c.Kind == Equal && c.AEnd-c.AStart > nn {
			group = append(group, EditSpan{Equal, c.AStart, min(c.AEnd, c.AStart+context), c.BStart, min(c.BEnd, c.BStart+context)})
			groups = append(groups, group)
			group = nil
			c = EditSpan{Equal, max(c.AStart, c.AEnd-context), c.AEnd, max(c.BStart, c.BEnd-context), c.BEnd}
		}
		group = append(group, c)
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Kind == Equal) {
		groups = append(groups, group)
	}
	return groups
}

// formatRangeUnified renders a half-open range in unified hunk-header form:
// "start,length" with 1-based start, shortened to "start" for length 1, and
// anchored just before the range for length 0.
func formatRangeUnified(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}
