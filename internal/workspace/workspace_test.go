package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/fractura/internal/config"
)

func TestResolve_FindsDocumentInParent(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	if err := os.WriteFile(filepath.Join(root, cfg.Document), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	ws, err := Resolve(nested, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if ws.Root != root {
		t.Fatalf("Root = %q, want %q", ws.Root, root)
	}
}

func TestResolve_NoDocument_UsesStartDir(t *testing.T) {
	dir := t.TempDir()
	ws, err := Resolve(dir, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if ws.Root != dir {
		t.Fatalf("Root = %q, want %q", ws.Root, dir)
	}
}

func TestDocumentPath_FallbackConvention(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	alt := filepath.Join(dir, cfg.Fallback)
	if err := os.WriteFile(alt, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	ws, err := Resolve(dir, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := ws.DocumentPath(); got != alt {
		t.Fatalf("DocumentPath = %q, want fallback %q", got, alt)
	}
}

func TestDocumentPath_PrimaryWins(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	primary := filepath.Join(dir, cfg.Document)
	for _, name := range []string{cfg.Document, cfg.Fallback} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ws, err := Resolve(dir, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := ws.DocumentPath(); got != primary {
		t.Fatalf("DocumentPath = %q, want primary %q", got, primary)
	}
}

func TestEnsureOutputs(t *testing.T) {
	dir := t.TempDir()
	ws, err := Resolve(dir, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.EnsureOutputs(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(ws.OutputsDir())
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatal("outputs path is not a directory")
	}
}
