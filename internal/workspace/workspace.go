package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/fractura/internal/config"
)

// Workspace resolves file locations for one run: the ritual document, the
// outputs directory, and the debug log.
type Workspace struct {
	Root string
	cfg  *config.Config
}

// Resolve walks up from startDir looking for the ritual document (primary or
// fallback filename). If neither is found, startDir itself is the root; the
// document load will then report the missing file.
func Resolve(startDir string, cfg *config.Config) (*Workspace, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace: %w", err)
	}
	for probe := dir; ; {
		if exists(filepath.Join(probe, cfg.Document)) || exists(filepath.Join(probe, cfg.Fallback)) {
			return &Workspace{Root: probe, cfg: cfg}, nil
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			return &Workspace{Root: dir, cfg: cfg}, nil
		}
		probe = parent
	}
}

// DocumentPath returns the primary document path, or the fallback path when
// only the fallback filename exists.
func (w *Workspace) DocumentPath() string {
	primary := filepath.Join(w.Root, w.cfg.Document)
	if !exists(primary) {
		if alt := filepath.Join(w.Root, w.cfg.Fallback); exists(alt) {
			return alt
		}
	}
	return primary
}

// OutputPath returns the path of a file inside the outputs directory.
func (w *Workspace) OutputPath(name string) string {
	return filepath.Join(w.Root, w.cfg.Outputs, name)
}

// OutputsDir returns the outputs directory path.
func (w *Workspace) OutputsDir() string {
	return filepath.Join(w.Root, w.cfg.Outputs)
}

// LogPath returns the debug log path at the workspace root.
func (w *Workspace) LogPath() string {
	return filepath.Join(w.Root, w.cfg.LogFile)
}

// EnsureOutputs creates the outputs directory if it does not exist.
func (w *Workspace) EnsureOutputs() error {
	if err := os.MkdirAll(w.OutputsDir(), 0755); err != nil {
		return fmt.Errorf("creating outputs dir: %w", err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
