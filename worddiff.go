package diffplus

import "strings"

// HighlightWordDiff compares one pair of lines at word granularity and
// returns the styled fragments for each side: the A side marks deleted and
// replaced words as removed, the B side marks inserted and replaced words as
// added, and unchanged words are unstyled on both sides.
//
// Lines are tokenized by whitespace splitting and tokens are rejoined with
// single spaces, so original inter-word spacing is not preserved. That is a
// documented limitation of word-level display, not a defect.
//
// The word alignment is the same algorithm as the line alignment, run on
// tokens instead of lines.
func HighlightWordDiff(oldLine, newLine string) (oldFrags, newFrags []Fragment) {
	oldWords := strings.Fields(oldLine)
	newWords := strings.Fields(newLine)

	for _, s := range Align(oldWords, newWords) {
		switch s.Kind {
		case Equal:
			oldFrags = appendWords(oldFrags, oldWords[s.AStart:s.AEnd], StyleNone)
			newFrags = appendWords(newFrags, newWords[s.BStart:s.BEnd], StyleNone)
		case Replace:
			oldFrags = appendWords(oldFrags, oldWords[s.AStart:s.AEnd], StyleRemoved)
			newFrags = appendWords(newFrags, newWords[s.BStart:s.BEnd], StyleAdded)
		case Delete:
			oldFrags = appendWords(oldFrags, oldWords[s.AStart:s.AEnd], StyleRemoved)
		case Insert:
			newFrags = appendWords(newFrags, newWords[s.BStart:s.BEnd], StyleAdded)
		}
	}

	oldFrags = trimTrailingSpace(coalesce(oldFrags))
	newFrags = trimTrailingSpace(coalesce(newFrags))
	return oldFrags, newFrags
}

// coalesce merges consecutive fragments that share a style, so runs of
// unchanged words separated by changes on the other side come out as one
// fragment.
func coalesce(frags []Fragment) []Fragment {
	var out []Fragment
	for _, f := range frags {
		if n := len(out); n > 0 && out[n-1].Style == f.Style {
			out[n-1].Text += f.Text
			continue
		}
		out = append(out, f)
	}
	return out
}

// appendWords joins a run of words with single spaces into one fragment,
// followed by a separating space, and appends it with the given style.
func appendWords(frags []Fragment, words []string, style FragStyle) []Fragment {
	if len(words) == 0 {
		return frags
	}
	return append(frags, Fragment{Text: strings.Join(words, " ") + " ", Style: style})
}

// trimTrailingSpace drops the separating space after the final fragment.
func trimTrailingSpace(frags []Fragment) []Fragment {
	if n := len(frags); n > 0 {
		frags[n-1].Text = strings.TrimSuffix(frags[n-1].Text, " ")
	}
	return frags
}
