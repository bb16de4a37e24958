// Package document loads the ritual configuration document. The document is
// an ordinary JSON object; only two sections are read, and every key is
// optional. A key that is present but not of the expected type is treated the
// same as a missing key.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

var (
	// ErrNotFound reports a missing document file.
	ErrNotFound = errors.New("document not found")
	// ErrParse reports a document that is not valid JSON.
	ErrParse = errors.New("document is not valid JSON")
)

// Document is the in-memory view of the ritual configuration.
type Document struct {
	Symbolic  SymbolicAnalysis
	Narrative NarrativeStructures
}

// SymbolicAnalysis holds the symbolic_analysis section.
type SymbolicAnalysis struct {
	Symbols             []string
	AestheticTechniques []string
}

// NarrativeStructures holds the narrative_structures section.
type NarrativeStructures struct {
	Mantras    []string
	Archetype  string
	Techniques []string
}

// Store reads the document from a fixed path. Each Load re-reads the file so
// stages always see the current contents.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore returns a Store bound to the given document path.
func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads and parses the document. Missing file → ErrNotFound, malformed
// JSON → ErrParse; both are wrapped with the offending path.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("reading document %s: %w", s.path, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, s.path, err)
	}

	symbolic := section(top, "symbolic_analysis")
	narrative := section(top, "narrative_structures")
	doc := &Document{
		Symbolic: SymbolicAnalysis{
			Symbols:             stringList(symbolic, "symbols"),
			AestheticTechniques: stringList(symbolic, "aesthetic_techniques"),
		},
		Narrative: NarrativeStructures{
			Mantras:    stringList(narrative, "mantras"),
			Archetype:  stringValue(narrative, "archetype"),
			Techniques: stringList(narrative, "techniques"),
		},
	}
	s.log.Info("document loaded", zap.String("path", s.path))
	return doc, nil
}

// section decodes a top-level object field. Missing or wrong-typed sections
// yield nil, which the field helpers treat as empty.
func section(top map[string]json.RawMessage, key string) map[string]json.RawMessage {
	raw, ok := top[key]
	if !ok {
		return nil
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// stringList decodes a list-of-string field. Missing or wrong-typed fields
// yield nil.
func stringList(section map[string]json.RawMessage, key string) []string {
	raw, ok := section[key]
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// stringValue decodes a string field. Missing or wrong-typed fields yield "".
func stringValue(section map[string]json.RawMessage, key string) string {
	raw, ok := section[key]
	if !ok {
		return ""
	}
	var out string
	if err := json.Unmarshal(raw, &out); err != nil {
		return ""
	}
	return out
}
