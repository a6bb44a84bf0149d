package diffplus

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermSink renders display instructions to a writer, styling each line from
// its role and each fragment from its fragment style. Fragment styles win
// over the line role, so word-diff fragments and dimmed line numbers keep
// their own look inside an otherwise styled line.
//
// TermSink is the display-layer boundary: the renderers know nothing about
// ANSI escapes, and the sink knows nothing about edit scripts.
type TermSink struct {
	w       io.Writer
	noColor bool
	roles   map[Role]lipgloss.Style
	frags   map[FragStyle]lipgloss.Style
}

// NewTermSink returns a sink writing styled lines to w. With noColor set it
// writes plain text.
func NewTermSink(w io.Writer, noColor bool) *TermSink {
	return &TermSink{
		w:       w,
		noColor: noColor,
		roles: map[Role]lipgloss.Style{
			RoleContext:  lipgloss.NewStyle(),
			RoleAdded:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			RoleRemoved:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			RoleModified: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			RoleHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
			RoleHunk:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		},
		frags: map[FragStyle]lipgloss.Style{
			StyleAdded:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
			StyleRemoved: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			StyleDim:     lipgloss.NewStyle().Faint(true),
		},
	}
}

// Emit writes one instruction as a single output line.
func (t *TermSink) Emit(in Instruction) {
	if t.noColor {
		fmt.Fprintln(t.w, in.Text())
		return
	}

	role := t.roles[in.Role]
	var sb strings.Builder
	for _, f := range in.Fragments {
		if f.Style == StyleNone {
			sb.WriteString(role.Render(f.Text))
			continue
		}
		sb.WriteString(t.frags[f.Style].Render(f.Text))
	}
	fmt.Fprintln(t.w, sb.String())
}
