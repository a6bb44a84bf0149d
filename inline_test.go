package diffplus

import (
	"reflect"
	"testing"
)

func renderInlineLines(a, b []string, opts Options) []string {
	var c Collector
	RenderInline(&c, Compute(a, b, "a.txt", "b.txt", opts), opts)
	return c.Lines()
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected []string
	}{
		{
			name:     "single replace",
			a:        []string{"a", "b", "c"},
			b:        []string{"a", "x", "c"},
			expected: []string{"  a", "- b", "+ x", "  c"},
		},
		{
			name:     "replace prints all removals before additions",
			a:        []string{"a", "b1", "b2", "z"},
			b:        []string{"a", "n1", "n2", "n3", "z"},
			expected: []string{"  a", "- b1", "- b2", "+ n1", "+ n2", "+ n3", "  z"},
		},
		{
			name:     "pure insertion",
			a:        []string{"a"},
			b:        []string{"a", "b"},
			expected: []string{"  a", "+ b"},
		},
		{
			name:     "pure deletion",
			a:        []string{"a", "b"},
			b:        []string{"b"},
			expected: []string{"- a", "  b"},
		},
		{
			name:     "identical",
			a:        []string{"a", "b"},
			b:        []string{"a", "b"},
			expected: []string{"  a", "  b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := renderInlineLines(tt.a, tt.b, DefaultOptions())
			// Transcript lines follow the file header.
			if !reflect.DeepEqual(lines[1:], tt.expected) {
				t.Errorf("RenderInline(%v, %v) = %q, want %q", tt.a, tt.b, lines[1:], tt.expected)
			}
		})
	}
}

// TestRenderInlineHeader checks that the transcript opens with a header
// naming both files, like the side-by-side view does.
func TestRenderInlineHeader(t *testing.T) {
	var c Collector
	opts := DefaultOptions()
	RenderInline(&c, Compute([]string{"a"}, []string{"b"}, "old.txt", "new.txt", opts), opts)

	if c.Instructions[0].Role != RoleHeader {
		t.Fatalf("first instruction role = %v, want RoleHeader", c.Instructions[0].Role)
	}
	if got := c.Instructions[0].Text(); got != "old.txt → new.txt" {
		t.Errorf("header = %q, want %q", got, "old.txt → new.txt")
	}
}

func TestRenderInlineRoles(t *testing.T) {
	var c Collector
	opts := DefaultOptions()
	RenderInline(&c, Compute([]string{"a", "b"}, []string{"a", "x"}, "a.txt", "b.txt", opts), opts)

	expected := []Role{RoleHeader, RoleContext, RoleRemoved, RoleAdded}
	roles := make([]Role, len(c.Instructions))
	for i, in := range c.Instructions {
		roles[i] = in.Role
	}
	if !reflect.DeepEqual(roles, expected) {
		t.Errorf("roles = %v, want %v", roles, expected)
	}
}

func TestRenderInlineLineNumbers(t *testing.T) {
	opts := Options{Context: DefaultContext, ShowLineNumbers: true}
	lines := renderInlineLines([]string{"a", "b", "c"}, []string{"a", "x", "c"}, opts)

	expected := []string{
		"   1   a",
		"   2 - b",
		"   2 + x",
		"   3   c",
	}
	if !reflect.DeepEqual(lines[1:], expected) {
		t.Errorf("numbered lines = %q, want %q", lines[1:], expected)
	}
}
