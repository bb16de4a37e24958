package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/fractura/internal/config"
)

func TestInit_CreatesDocumentAndSettings(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultDocument))
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("scaffolded document is not valid JSON: %v", err)
	}
	if _, ok := doc["symbolic_analysis"]; !ok {
		t.Fatal("scaffolded document missing symbolic_analysis")
	}

	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err != nil {
		t.Fatalf("settings file not created: %v", err)
	}
}

func TestInit_RefusesExistingDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultDocument)
	if err := os.WriteFile(path, []byte(`{"mine": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Init(dir); err == nil {
		t.Fatal("expected error when document already exists")
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"mine": true}` {
		t.Fatal("existing document was overwritten")
	}
}
