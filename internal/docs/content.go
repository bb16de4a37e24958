package docs

var topics = []Topic{
	{
		Name:    "document",
		Title:   "The Ritual Document",
		Summary: "Shape of FRACTURA.Δ02.json and the fallback convention",
		Content: topicDocument,
	},
	{
		Name:    "pipeline",
		Title:   "Pipeline Stages",
		Summary: "The three stages, their outputs, and the failure policy",
		Content: topicPipeline,
	},
	{
		Name:    "chant",
		Title:   "Chant Fusion Rules",
		Summary: "Shuffle and the four positional glyph decorations",
		Content: topicChant,
	},
}

const topicDocument = `The Ritual Document
===================

fractura reads a JSON document found by walking up from the working
directory. The primary filename is FRACTURA.Δ02.json; when only the
alternate convention FRACTURA_D02.json exists, that file is used
instead. Both names can be overridden in fractura.yaml.

Only two sections are read:

    {
      "symbolic_analysis": {
        "symbols": ["Φ", "Ψ"],
        "aesthetic_techniques": ["fracture chromatique"]
      },
      "narrative_structures": {
        "mantras": ["Par la Fracture vient la Vue"],
        "archetype": "l'Oracle brisé",
        "techniques": ["répétition rituelle"]
      }
    }

Every key is optional. A missing key, or a key holding a value of the
wrong type, is treated as empty. Anything else in the document is
ignored.
`

const topicPipeline = `Pipeline Stages
===============

A full ritual runs three stages in order:

  1. symbols  — deduplicated symbolic content, written to
                outputs/symboles_extraits.txt
  2. mantras  — narrative content verbatim (duplicates kept), plus
                tagged [ARCHETYPE] and [TECHNIQUE] lines, written to
                outputs/mantras_extraits.txt
  3. chant    — both lists fused, shuffled, and glyph-decorated,
                written to outputs/chant_glitch_fusion.txt

Each stage is attempted even if an earlier one failed; a failed stage
just leaves its file absent or stale. The run succeeds only when all
three stages do, and the tally is recorded in
outputs/ritual_state.json (shown by 'fractura status').

The document is re-read at the start of every extraction stage. The
chant stage prefers the lists gathered earlier in the same run; when a
stage runs standalone ('fractura chant'), it re-parses the persisted
reports instead, stripping headers and numbering.
`

const topicChant = `Chant Fusion Rules
==================

The chant stage concatenates symbol lines then mantra lines, applies a
uniform random shuffle, and decorates each line by its post-shuffle
index i against the glyph vocabulary

    ☿ ☄ ⚡ ◊ ∞ △ ☆ ◈

selecting one of four rules by i mod 4:

  0: wrap         "<g> <line> <g>" with g = glyph[i mod 8]
  1: cluster      (i mod 3)+1 leading glyphs from the vocabulary start
  2: trailing     "<line> <g>" with g = glyph[(-i) mod 8], counting
                  backward through the vocabulary
  3: midpoint     glyph[i mod 8] inserted at the middle word, only for
                  lines of more than two words

The shuffle is not seeded for reproducibility: every run chants in a
different order.
`
