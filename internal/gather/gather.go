// Package gather flattens document sections into ordered content lines.
package gather

import (
	"fmt"

	"github.com/jorge-barreto/fractura/internal/document"
)

// Symbols returns the symbolic content: core symbols followed by aesthetic
// techniques, deduplicated by exact value with first-seen order preserved.
func Symbols(doc *document.Document) []string {
	all := make([]string, 0, len(doc.Symbolic.Symbols)+len(doc.Symbolic.AestheticTechniques))
	all = append(all, doc.Symbolic.Symbols...)
	all = append(all, doc.Symbolic.AestheticTechniques...)

	seen := make(map[string]bool, len(all))
	unique := make([]string, 0, len(all))
	for _, s := range all {
		if !seen[s] {
			unique = append(unique, s)
			seen[s] = true
		}
	}
	return unique
}

// Mantras returns the narrative content: mantras verbatim (duplicates kept,
// repetition is meaningful), then a tagged archetype line when the archetype
// is non-empty, then one tagged line per technique in source order.
func Mantras(doc *document.Document) []string {
	n := doc.Narrative
	out := make([]string, 0, len(n.Mantras)+len(n.Techniques)+1)
	out = append(out, n.Mantras...)
	if n.Archetype != "" {
		out = append(out, fmt.Sprintf("[ARCHETYPE] %s", n.Archetype))
	}
	for _, t := range n.Techniques {
		out = append(out, fmt.Sprintf("[TECHNIQUE] %s", t))
	}
	return out
}
