package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax from an executed trace.
// Each distinct node becomes one box (the entry node a circle), consecutive
// steps become arrows labeled with their step numbers, and repeated
// traversals of the same edge collapse onto a single arrow. The node the
// trace ended on is highlighted.
func GenerateMermaid(transitions []domain.StateTransition) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	// Nodes in first-visit order
	seen := make(map[string]bool)
	for i, tr := range transitions {
		if seen[tr.Node] {
			continue
		}
		seen[tr.Node] = true

		safeID := sanitizeMermaidID(tr.Node)
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "((", "))" // entry node
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, tr.Node, closer))
	}

	// One arrow per distinct (from, to) pair, labeled with every step number
	// that walked it. Loops in the trace show up as comma lists.
	type edge struct{ from, to string }
	walks := make(map[edge][]string)
	var order []edge
	for i := 1; i < len(transitions); i++ {
		e := edge{
			from: sanitizeMermaidID(transitions[i-1].Node),
			to:   sanitizeMermaidID(transitions[i].Node),
		}
		if _, ok := walks[e]; !ok {
			order = append(order, e)
		}
		walks[e] = append(walks[e], fmt.Sprint(i+1))
	}
	for _, e := range order {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", e.from, strings.Join(walks[e], ","), e.to))
	}

	// Trace overlay: everything visited, ending node highlighted
	if len(transitions) > 0 {
		last := sanitizeMermaidID(transitions[len(transitions)-1].Node)

		sb.WriteString("\n    %% Trace Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		styled := make(map[string]bool)
		for _, tr := range transitions {
			safeID := sanitizeMermaidID(tr.Node)
			if safeID == last || styled[safeID] {
				continue
			}
			styled[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", last))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
