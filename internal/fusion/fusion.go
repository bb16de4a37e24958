// Package fusion combines extracted symbol and mantra lines into a shuffled,
// glyph-decorated invocation.
package fusion

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
)

// glyphs is the fixed decoration vocabulary, cycled by position.
var glyphs = []string{"☿", "☄", "⚡", "◊", "∞", "△", "☆", "◈"}

// ShuffleFunc permutes n elements via swap. The default is a uniform shuffle;
// tests can inject an identity or fixed-seed permutation.
type ShuffleFunc func(n int, swap func(i, j int))

// Transformer fuses two line lists into glitched output.
type Transformer struct {
	log     *zap.Logger
	shuffle ShuffleFunc
}

// New returns a Transformer. A nil shuffle selects a time-seeded uniform
// shuffle.
func New(log *zap.Logger, shuffle ShuffleFunc) *Transformer {
	if shuffle == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		shuffle = rng.Shuffle
	}
	return &Transformer{log: log, shuffle: shuffle}
}

// Fuse concatenates symbols then mantras, shuffles the whole sequence, and
// decorates each line by its post-shuffle index. Both inputs empty means
// there is nothing to fuse; the caller treats the empty result as non-fatal.
func (t *Transformer) Fuse(symbolLines, mantraLines []string) []string {
	if len(symbolLines) == 0 && len(mantraLines) == 0 {
		return nil
	}

	combined := make([]string, 0, len(symbolLines)+len(mantraLines))
	combined = append(combined, symbolLines...)
	combined = append(combined, mantraLines...)
	t.shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	out := make([]string, len(combined))
	for i, line := range combined {
		out[i] = decorate(line, i)
	}
	t.log.Info("fusion applied", zap.Int("entries", len(out)))
	return out
}

// decorate applies one of four positional rules, selected by i mod 4.
func decorate(line string, i int) string {
	switch i % 4 {
	case 0:
		// symmetric wrap
		g := glyphs[i%len(glyphs)]
		return fmt.Sprintf("%s %s %s", g, line, g)
	case 1:
		// leading cluster of (i mod 3)+1 glyphs
		var cluster strings.Builder
		for j := 0; j < i%3+1; j++ {
			cluster.WriteString(glyphs[j%len(glyphs)])
		}
		return fmt.Sprintf("%s %s", cluster.String(), line)
	case 2:
		// trailing glyph, counting backward through the vocabulary
		g := glyphs[(len(glyphs)-i%len(glyphs))%len(glyphs)]
		return fmt.Sprintf("%s %s", line, g)
	default:
		// glyph inserted at the midpoint word
		words := strings.Fields(line)
		if len(words) <= 2 {
			return line
		}
		mid := len(words) / 2
		words = append(words[:mid], append([]string{glyphs[i%len(glyphs)]}, words[mid:]...)...)
		return strings.Join(words, " ")
	}
}
