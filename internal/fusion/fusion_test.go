package fusion

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// identity keeps the concatenation order so rule application is predictable.
func identity(n int, swap func(i, j int)) {}

func TestFuse_BothEmpty(t *testing.T) {
	tr := New(zap.NewNop(), identity)
	assert.Empty(t, tr.Fuse(nil, nil))
}

func TestFuse_Totality(t *testing.T) {
	tr := New(zap.NewNop(), identity)
	out := tr.Fuse([]string{"s1"}, []string{"m1"})
	assert.Len(t, out, 2)
	assert.Contains(t, out[0], "s1")
	assert.Contains(t, out[1], "m1")
	for _, line := range out {
		assert.NotEmpty(t, line)
	}
}

func TestFuse_SymbolsPrecedeMantrasBeforeShuffle(t *testing.T) {
	tr := New(zap.NewNop(), identity)
	out := tr.Fuse([]string{"sym"}, []string{"man"})
	assert.Contains(t, out[0], "sym")
	assert.Contains(t, out[1], "man")
}

func TestDecorate_RuleCycle(t *testing.T) {
	lines := []string{
		"alpha beta gamma",
		"alpha beta gamma",
		"alpha beta gamma",
		"alpha beta gamma",
		"alpha beta gamma",
	}
	tr := New(zap.NewNop(), identity)
	out := tr.Fuse(lines, nil)

	assert.Equal(t, "☿ alpha beta gamma ☿", out[0], "index 0: symmetric wrap")
	assert.Equal(t, "☿☄ alpha beta gamma", out[1], "index 1: cluster of 2")
	assert.Equal(t, "alpha beta gamma ☆", out[2], "index 2: trailing backward glyph")
	assert.Equal(t, "alpha ◊ beta gamma", out[3], "index 3: midpoint insertion")
	assert.Equal(t, "∞ alpha beta gamma ∞", out[4], "index 4: wrap again")
}

func TestDecorate_MidpointRuleShortLineUnchanged(t *testing.T) {
	assert.Equal(t, "two words", decorate("two words", 3))
	assert.Equal(t, "single", decorate("single", 7))
}

func TestDecorate_TrailingGlyphCountsBackward(t *testing.T) {
	// index 6: (-6) mod 8 = 2 → ⚡
	assert.Equal(t, "om ⚡", decorate("om", 6))
	// index 10: (-10) mod 8 = 6 → ☆
	assert.Equal(t, "om ☆", decorate("om", 10))
}

func TestDecorate_ClusterSizeCycles(t *testing.T) {
	// cluster size is (i mod 3)+1, glyphs taken from the vocabulary start
	assert.Equal(t, "☿☄⚡ om", decorate("om", 5))  // 5 mod 3 = 2 → 3 glyphs
	assert.Equal(t, "☿ om", decorate("om", 9))    // 9 mod 3 = 0 → 1 glyph
	assert.Equal(t, "☿☄ om", decorate("om", 13))  // 13 mod 3 = 1 → 2 glyphs
}

func TestFuse_SeededShuffleKeepsEveryLine(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := New(zap.NewNop(), rng.Shuffle)

	symbols := []string{"a", "b", "c"}
	mantras := []string{"d", "e"}
	out := tr.Fuse(symbols, mantras)
	assert.Len(t, out, 5)

	joined := strings.Join(out, "\n")
	for _, want := range append(symbols, mantras...) {
		assert.Contains(t, joined, want)
	}
}

func TestNew_NilShuffleDefaults(t *testing.T) {
	tr := New(zap.NewNop(), nil)
	out := tr.Fuse([]string{"only line"}, nil)
	assert.Len(t, out, 1)
	assert.Contains(t, out[0], "only line")
}
