package diffplus

// The aligner is a junk-free sequence matcher in the difflib family: it
// repeatedly finds the longest contiguous matching block between the two
// sequences and recurses on the regions to the left and right of it. Ties
// between equally long blocks are broken by preferring the block that starts
// earliest in A, then earliest in B, so output is fully deterministic.
//
// Worst case is O(N*M); expected case is much better because the inner loop
// only visits positions where elements actually match. For very large inputs
// this quadratic ceiling is the known performance limit of the approach.

// matchBlock records that a[A:A+Size] == b[B:B+Size].
type matchBlock struct {
	A    int
	B    int
	Size int
}

// Align computes the edit script between two sequences of comparable
// elements. The same function serves whole-line alignment and word-level
// alignment; equality is exact value equality on whatever representation the
// caller passes in.
//
// The returned spans partition [0,len(a)) and [0,len(b)) in order. Empty
// inputs yield a single Insert or Delete span covering the non-empty side,
// or no spans at all when both are empty.
func Align[E comparable](a, b []E) []EditSpan {
	ai, bi := 0, 0
	var spans []EditSpan
	for _, m := range matchingBlocks(a, b) {
		switch {
		case ai < m.A && bi < m.B:
			spans = append(spans, EditSpan{Replace, ai, m.A, bi, m.B})
		case ai < m.A:
			spans = append(spans, EditSpan{Delete, ai, m.A, bi, bi})
		case bi < m.B:
			spans = append(spans, EditSpan{Insert, ai, ai, bi, m.B})
		}
		if m.Size > 0 {
			spans = append(spans, EditSpan{Equal, m.A, m.A + m.Size, m.B, m.B + m.Size})
		}
		ai, bi = m.A+m.Size, m.B+m.Size
	}
	return spans
}

// matchedElements returns the total number of matched elements between a and
// b, i.e. the summed size of all matching blocks. This is the M in the
// similarity ratio 2*M/(len(a)+len(b)).
func matchedElements[E comparable](a, b []E) int {
	total := 0
	for _, m := range matchingBlocks(a, b) {
		total += m.Size
	}
	return total
}

// matchingBlocks returns the maximal matching blocks between a and b,
// monotonically increasing in both index spaces, with adjacent blocks
// collapsed. The list is terminated by a zero-size sentinel at
// (len(a), len(b)) so callers can flush trailing non-equal regions.
func matchingBlocks[E comparable](a, b []E) []matchBlock {
	// Index every element of b by value so the longest-match scan only
	// visits positions that can actually match.
	b2j := make(map[E][]int, len(b))
	for j, e := range b {
		b2j[e] = append(b2j[e], j)
	}

	var matched []matchBlock
	var recurse func(alo, ahi, blo, bhi int)
	recurse = func(alo, ahi, blo, bhi int) {
		m := findLongestMatch(a, b, b2j, alo, ahi, blo, bhi)
		if m.Size == 0 {
			return
		}
		if alo < m.A && blo < m.B {
			recurse(alo, m.A, blo, m.B)
		}
		matched = append(matched, m)
		if m.A+m.Size < ahi && m.B+m.Size < bhi {
			recurse(m.A+m.Size, ahi, m.B+m.Size, bhi)
		}
	}
	recurse(0, len(a), 0, len(b))

	// Collapse adjacent blocks so Equal spans come out maximal.
	var blocks []matchBlock
	cur := matchBlock{}
	for _, m := range matched {
		if cur.A+cur.Size == m.A && cur.B+cur.Size == m.B {
			cur.Size += m.Size
			continue
		}
		if cur.Size > 0 {
			blocks = append(blocks, cur)
		}
		cur = m
	}
	if cur.Size > 0 {
		blocks = append(blocks, cur)
	}

	return append(blocks, matchBlock{len(a), len(b), 0})
}

// findLongestMatch finds the longest block such that a[i:i+k] == b[j:j+k]
// with alo <= i <= i+k <= ahi and blo <= j <= j+k <= bhi. Of all maximal
// blocks it returns the one starting earliest in a, and of those, earliest
// in b. Returns a zero-size block at (alo, blo) when nothing matches.
func findLongestMatch[E comparable](a, b []E, b2j map[E][]int, alo, ahi, blo, bhi int) matchBlock {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest match ending with a[i-1] and
	// b[j]; rebuilt row by row as i advances.
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return matchBlock{besti, bestj, bestsize}
}
