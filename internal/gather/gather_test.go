package gather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorge-barreto/fractura/internal/document"
)

func TestSymbols_DeduplicatesPreservingOrder(t *testing.T) {
	doc := &document.Document{
		Symbolic: document.SymbolicAnalysis{
			Symbols: []string{"a", "b", "a", "c"},
		},
	}
	assert.Equal(t, []string{"a", "b", "c"}, Symbols(doc))
}

func TestSymbols_TechniquesFollowSymbols(t *testing.T) {
	doc := &document.Document{
		Symbolic: document.SymbolicAnalysis{
			Symbols:             []string{"Φ", "Ψ"},
			AestheticTechniques: []string{"glitch", "Φ"},
		},
	}
	assert.Equal(t, []string{"Φ", "Ψ", "glitch"}, Symbols(doc))
}

func TestSymbols_EmptyDocument(t *testing.T) {
	assert.Empty(t, Symbols(&document.Document{}))
}

func TestMantras_KeepsDuplicates(t *testing.T) {
	doc := &document.Document{
		Narrative: document.NarrativeStructures{
			Mantras: []string{"x", "x"},
		},
	}
	assert.Equal(t, []string{"x", "x"}, Mantras(doc))
}

func TestMantras_EmptyArchetypeProducesNoLine(t *testing.T) {
	doc := &document.Document{
		Narrative: document.NarrativeStructures{
			Mantras:   []string{"x", "x"},
			Archetype: "",
		},
	}
	assert.Equal(t, []string{"x", "x"}, Mantras(doc))
}

func TestMantras_TaggedLines(t *testing.T) {
	doc := &document.Document{
		Narrative: document.NarrativeStructures{
			Mantras:    []string{"om"},
			Archetype:  "oracle",
			Techniques: []string{"loop", "echo"},
		},
	}
	assert.Equal(t, []string{
		"om",
		"[ARCHETYPE] oracle",
		"[TECHNIQUE] loop",
		"[TECHNIQUE] echo",
	}, Mantras(doc))
}
