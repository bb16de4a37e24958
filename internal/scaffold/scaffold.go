package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/fractura/internal/config"
	"github.com/jorge-barreto/fractura/internal/ux"
)

var documentTemplate = `{
  "title": "FRACTURA.Δ02",
  "symbolic_analysis": {
    "symbols": ["Φ", "Ψ", "Δ"],
    "aesthetic_techniques": ["fracture chromatique", "saturation inversée"]
  },
  "narrative_structures": {
    "mantras": ["Par la Fracture vient la Vue", "Lux contre Spectaculum"],
    "archetype": "l'Oracle brisé",
    "techniques": ["répétition rituelle", "montage glitché"]
  }
}
`

var settingsTemplate = `# fractura settings (every key optional)
# document: FRACTURA.Δ02.json
# fallback: FRACTURA_D02.json
# outputs: outputs
# log-file: fractura_debug.log
`

// Init creates an example ritual document and settings file in targetDir.
// Refuses to clobber an existing document.
func Init(targetDir string) error {
	docPath := filepath.Join(targetDir, config.DefaultDocument)
	if _, err := os.Stat(docPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.DefaultDocument, targetDir)
	}
	if err := os.WriteFile(docPath, []byte(documentTemplate), 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	settingsPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := os.WriteFile(settingsPath, []byte(settingsTemplate), 0644); err != nil {
			return fmt.Errorf("writing settings: %w", err)
		}
	}

	fmt.Printf("\n%s%s✓ Initialized ritual workspace%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s%s%s — example ritual document\n", ux.Cyan, config.DefaultDocument, ux.Reset)
	fmt.Printf("    %s%s%s — tool settings\n\n", ux.Cyan, config.FileName, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s%s%s with your own material\n", ux.Cyan, config.DefaultDocument, ux.Reset)
	fmt.Printf("    2. Run %sfractura%s to perform the full ritual\n\n", ux.Cyan, ux.Reset)

	return nil
}
