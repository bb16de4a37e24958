// Package report persists extracted content as formatted text artifacts and
// reads them back. Reader exactly inverts Writer's numbering and header
// scheme, so a written report round-trips to the original line sequence.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Format selects the header and footer wording of a report category.
type Format struct {
	Title string // first line, including the category emoji
	Noun  string // what the footer counts
}

var (
	// Symbols is the format of symboles_extraits.txt.
	Symbols = Format{Title: "🔮 Symboles analysés dans FRACTURA.Δ02", Noun: "symboles"}
	// Mantras is the format of mantras_extraits.txt.
	Mantras = Format{Title: "🗝️ Mantras extraits de FRACTURA.Δ02", Noun: "éléments narratifs"}
)

const timeLayout = "2006-01-02 15:04:05"

// Writer writes numbered reports in one category's format.
type Writer struct {
	format Format
	log    *zap.Logger
}

// NewWriter returns a Writer for the given format.
func NewWriter(format Format, log *zap.Logger) *Writer {
	return &Writer{format: format, log: log}
}

// Write renders the lines as a numbered report and overwrites path.
func (w *Writer) Write(lines []string, path string) error {
	var b strings.Builder
	b.WriteString(w.format.Title + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Extraction générée le: %s\n\n", time.Now().Format(timeLayout))
	for i, line := range lines {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, line)
	}
	fmt.Fprintf(&b, "\n--- Total: %d %s ---\n", len(lines), w.format.Noun)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	w.log.Info("report written", zap.String("path", path), zap.Int("entries", len(lines)))
	return nil
}

// WriteChant renders the fused invocation and overwrites path. Chant lines
// carry glyph decorations and are written unnumbered.
func WriteChant(lines []string, path string, log *zap.Logger) error {
	var b strings.Builder
	b.WriteString("🔊 CHANT GLITCHÉ SACRÉ – FRACTURA.Δ02\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Par la Fracture vient la Vue\n")
	b.WriteString("Lux contre Spectaculum\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Généré le: %s\n", time.Now().Format(timeLayout))
	fmt.Fprintf(&b, "Éléments fusionnés: %d\n\n", len(lines))
	b.WriteString("--- INVOCATION ---\n\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n--- FIN DE L'INVOCATION ---\n")
	b.WriteString("FRACTURA.Δ02 // Luxcordia.EXE\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing chant %s: %w", path, err)
	}
	log.Info("chant written", zap.String("path", path), zap.Int("entries", len(lines)))
	return nil
}
