package diffplus

import "strings"

// Normalize returns a copy of lines with per-option folding applied:
// leading/trailing whitespace is stripped first (IgnoreWhitespace), then
// lines are lowercased (IgnoreCase). The result is used for comparison
// only; display always reads the original lines.
//
// Normalize is pure and never fails. When neither option is set the input
// slice is returned as-is.
func Normalize(lines []string, opts Options) []string {
	if !opts.IgnoreWhitespace && !opts.IgnoreCase {
		return lines
	}

	result := make([]string, len(lines))
	for i, line := range lines {
		if opts.IgnoreWhitespace {
			line = strings.TrimSpace(line)
		}
		if opts.IgnoreCase {
			line = strings.ToLower(line)
		}
		result[i] = line
	}
	return result
}
