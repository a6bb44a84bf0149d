package diffplus

// RenderInline emits a header naming both files, then a single-column
// chronological transcript of the whole comparison: unchanged lines once,
// deleted A-lines prefixed "-", inserted B-lines prefixed "+". Replace spans
// print all A-lines then all B-lines with no interleaving or word-level
// detail.
func RenderInline(sink Sink, res Result, opts Options) {
	sink.Emit(plain(RoleHeader, res.AName+" → "+res.BName))

	for _, s := range res.Spans {
		switch s.Kind {
		case Equal:
			for i, line := range res.A[s.AStart:s.AEnd] {
				sink.Emit(numbered(RoleContext, "  "+line, s.AStart+i+1, opts))
			}
		case Delete:
			emitInlineRemoved(sink, res.A[s.AStart:s.AEnd], s.AStart, opts)
		case Insert:
			emitInlineAdded(sink, res.B[s.BStart:s.BEnd], s.BStart, opts)
		case Replace:
			emitInlineRemoved(sink, res.A[s.AStart:s.AEnd], s.AStart, opts)
			emitInlineAdded(sink, res.B[s.BStart:s.BEnd], s.BStart, opts)
		}
	}
}

func emitInlineRemoved(sink Sink, lines []string, start int, opts Options) {
	for i, line := range lines {
		sink.Emit(numbered(RoleRemoved, "- "+line, start+i+1, opts))
	}
}

func emitInlineAdded(sink Sink, lines []string, start int, opts Options) {
	for i, line := range lines {
		sink.Emit(numbered(RoleAdded, "+ "+line, start+i+1, opts))
	}
}
