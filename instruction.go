package diffplus

// Role classifies a display instruction so the rendering target can style it
// without any diff-domain knowledge.
type Role int

const (
	// RoleContext marks an unchanged line.
	RoleContext Role = iota
	// RoleAdded marks a line present only in B.
	RoleAdded
	// RoleRemoved marks a line present only in A.
	RoleRemoved
	// RoleModified marks a line belonging to a Replace span.
	RoleModified
	// RoleHeader marks a file header or title line.
	RoleHeader
	// RoleHunk marks a unified-view hunk marker line.
	RoleHunk
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleContext:
		return "context"
	case RoleAdded:
		return "added"
	case RoleRemoved:
		return "removed"
	case RoleModified:
		return "modified"
	case RoleHeader:
		return "header"
	case RoleHunk:
		return "hunk"
	default:
		return "unknown"
	}
}

// FragStyle is the style of a single text fragment within an instruction.
// Fragment styles carry finer detail than the instruction role: word-diff
// output mixes styled and unstyled fragments on one line, and line numbers
// render dimmed regardless of the line's role.
type FragStyle int

const (
	// StyleNone renders the fragment unstyled.
	StyleNone FragStyle = iota
	// StyleAdded renders the fragment as inserted text.
	StyleAdded
	// StyleRemoved renders the fragment as deleted text.
	StyleRemoved
	// StyleDim renders the fragment de-emphasized (line numbers).
	StyleDim
)

// Fragment is a run of text with one style.
type Fragment struct {
	Text  string
	Style FragStyle
}

// Instruction is one line of display output: a role plus the styled
// fragments that make up the line, in order.
type Instruction struct {
	Role      Role
	Fragments []Fragment
}

// Text returns the instruction's fragments concatenated without styling.
func (in Instruction) Text() string {
	var sb []byte
	for _, f := range in.Fragments {
		sb = append(sb, f.Text...)
	}
	return string(sb)
}

// Sink receives display instructions from a renderer. Renderers take the
// sink as an explicit parameter so there is no process-global output state
// and every rendering call is test-isolated.
type Sink interface {
	Emit(Instruction)
}

// Collector is a Sink that records instructions in order. It is the
// canonical sink for tests and for callers that post-process output.
type Collector struct {
	Instructions []Instruction
}

// Emit appends the instruction to the collector.
func (c *Collector) Emit(in Instruction) {
	c.Instructions = append(c.Instructions, in)
}

// Lines returns the plain text of every collected instruction.
func (c *Collector) Lines() []string {
	lines := make([]string, len(c.Instructions))
	for i, in := range c.Instructions {
		lines[i] = in.Text()
	}
	return lines
}

// plain builds a single-fragment instruction with an unstyled body.
func plain(role Role, text string) Instruction {
	return Instruction{Role: role, Fragments: []Fragment{{Text: text}}}
}
