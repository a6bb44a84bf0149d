package diffplus

// Stats summarizes an edit script.
type Stats struct {
	Additions     int // lines present only in B
	Deletions     int // lines present only in A
	Modifications int // lines changed in place (max side of each Replace)
	TotalLinesA   int
	TotalLinesB   int

	// Similarity is a percentage in [0,100] measuring overall resemblance
	// of the two original sequences.
	Similarity float64
}

// TotalChanges returns the sum of all change categories.
func (s Stats) TotalChanges() int {
	return s.Additions + s.Deletions + s.Modifications
}

// ComputeStats derives statistics from a computed result.
//
// Counts come from walking the edit script: additions from Insert spans,
// deletions from Delete spans, and modifications from Replace spans (the
// larger side of each). Similarity is NOT derived from that script: it is an
// independent alignment of the original, unnormalized sequences, computed as
// 2*M/(len(A)+len(B))*100 where M is the matched element count. The two
// passes are kept separate on purpose: whitespace/case folding requested for
// display must not inflate the reported similarity. Do not "optimize" this
// into a reuse of the display alignment.
func ComputeStats(res Result) Stats {
	st := Stats{
		TotalLinesA: len(res.A),
		TotalLinesB: len(res.B),
	}

	for _, s := range res.Spans {
		switch s.Kind {
		case Insert:
			st.Additions += s.BEnd - s.BStart
		case Delete:
			st.Deletions += s.AEnd - s.AStart
		case Replace:
			aLen := s.AEnd - s.AStart
			bLen := s.BEnd - s.BStart
			if aLen > bLen {
				st.Modifications += aLen
			} else {
				st.Modifications += bLen
			}
		}
	}

	total := len(res.A) + len(res.B)
	if total > 0 {
		matched := matchedElements(res.A, res.B)
		st.Similarity = 2 * float64(matched) / float64(total) * 100
	}

	return st
}
