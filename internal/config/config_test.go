package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Document != DefaultDocument {
		t.Fatalf("Document = %q, want %q", cfg.Document, DefaultDocument)
	}
	if cfg.Outputs != DefaultOutputs {
		t.Fatalf("Outputs = %q, want %q", cfg.Outputs, DefaultOutputs)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("outputs: artefacts\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Outputs != "artefacts" {
		t.Fatalf("Outputs = %q, want artefacts", cfg.Outputs)
	}
	if cfg.Document != DefaultDocument {
		t.Fatalf("Document = %q, want default", cfg.Document)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("outputs: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate_RejectsPathSeparators(t *testing.T) {
	cfg := Default()
	cfg.Outputs = "a/b"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for path separator in outputs")
	}
}

func TestValidate_RejectsSameDocumentAndFallback(t *testing.T) {
	cfg := Default()
	cfg.Fallback = cfg.Document
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error when document == fallback")
	}
}
