// Package ritual drives the three-stage pipeline: symbol extraction, mantra
// extraction, and chant generation. Stages run in order and every stage is
// attempted even when an earlier one failed; a failed stage only leaves its
// output file absent or stale.
package ritual

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jorge-barreto/fractura/internal/document"
	"github.com/jorge-barreto/fractura/internal/fusion"
	"github.com/jorge-barreto/fractura/internal/gather"
	"github.com/jorge-barreto/fractura/internal/report"
	"github.com/jorge-barreto/fractura/internal/state"
	"github.com/jorge-barreto/fractura/internal/ux"
	"github.com/jorge-barreto/fractura/internal/workspace"
)

// Output filenames, all under the outputs directory.
const (
	SymbolsFile = "symboles_extraits.txt"
	MantrasFile = "mantras_extraits.txt"
	ChantFile   = "chant_glitch_fusion.txt"
)

// ErrNothingToFuse reports that neither extraction produced any content.
var ErrNothingToFuse = errors.New("no content available for chant generation")

// Orchestrator wires the pipeline components together.
type Orchestrator struct {
	ws    *workspace.Workspace
	log   *zap.Logger
	store *document.Store
	fuser *fusion.Transformer
}

// New returns an Orchestrator over the given workspace. A nil shuffle selects
// the default random shuffle.
func New(ws *workspace.Workspace, log *zap.Logger, shuffle fusion.ShuffleFunc) *Orchestrator {
	return &Orchestrator{
		ws:    ws,
		log:   log,
		store: document.NewStore(ws.DocumentPath(), log),
		fuser: fusion.New(log, shuffle),
	}
}

// ExtractSymbols loads the document, gathers the symbolic content, and writes
// the symbols report. The gathered lines are returned for in-memory handoff
// to the fusion stage.
func (o *Orchestrator) ExtractSymbols() ([]string, error) {
	o.log.Info("🔮 starting symbol extraction")
	doc, err := o.store.Load()
	if err != nil {
		return nil, err
	}
	lines := gather.Symbols(doc)
	if len(lines) == 0 {
		o.log.Warn("no symbols found in document")
		return nil, fmt.Errorf("no symbols found")
	}
	o.log.Info("symbols gathered", zap.Int("count", len(lines)))

	w := report.NewWriter(report.Symbols, o.log)
	if err := w.Write(lines, o.ws.OutputPath(SymbolsFile)); err != nil {
		return nil, err
	}
	return lines, nil
}

// ExtractMantras loads the document, gathers the narrative content, and
// writes the mantras report.
func (o *Orchestrator) ExtractMantras() ([]string, error) {
	o.log.Info("🗝️ starting mantra extraction")
	doc, err := o.store.Load()
	if err != nil {
		return nil, err
	}
	lines := gather.Mantras(doc)
	if len(lines) == 0 {
		o.log.Warn("no mantras found in document")
		return nil, fmt.Errorf("no mantras found")
	}
	o.log.Info("mantras gathered", zap.Int("count", len(lines)))

	w := report.NewWriter(report.Mantras, o.log)
	if err := w.Write(lines, o.ws.OutputPath(MantrasFile)); err != nil {
		return nil, err
	}
	return lines, nil
}

// GenerateChant fuses symbol and mantra lines into the chant artifact. Lists
// gathered earlier in the same run are used directly; a nil list falls back
// to reading the persisted report, which is the path a standalone chant run
// takes.
func (o *Orchestrator) GenerateChant(symbols, mantras []string) error {
	o.log.Info("🔊 starting glitch chant generation")
	r := report.NewReader(o.log)
	if symbols == nil {
		symbols = r.Read(o.ws.OutputPath(SymbolsFile))
	}
	if mantras == nil {
		mantras = r.Read(o.ws.OutputPath(MantrasFile))
	}

	fused := o.fuser.Fuse(symbols, mantras)
	if len(fused) == 0 {
		o.log.Error("no content available for chant generation")
		return ErrNothingToFuse
	}
	return report.WriteChant(fused, o.ws.OutputPath(ChantFile), o.log)
}

// Run executes the full ritual. Each stage is attempted unconditionally; the
// returned state carries the per-stage tally. Run itself only fails on setup
// problems (outputs directory creation), never on a stage failure.
func (o *Orchestrator) Run() (*state.RunState, error) {
	if err := o.ws.EnsureOutputs(); err != nil {
		return nil, err
	}

	st := state.NewRun()
	o.log.Info("📜 ritual started", zap.String("run_id", st.RunID))

	var symbols, mantras []string

	stages := []struct {
		id    string
		emoji string
		label string
		run   func() error
	}{
		{state.StageExtractingSymbols, "🔮", "Extraction des symboles", func() error {
			lines, err := o.ExtractSymbols()
			symbols = lines
			return err
		}},
		{state.StageExtractingMantras, "🗝️", "Extraction des mantras", func() error {
			lines, err := o.ExtractMantras()
			mantras = lines
			return err
		}},
		{state.StageGeneratingChant, "🔊", "Génération du chant glitché", func() error {
			return o.GenerateChant(symbols, mantras)
		}},
	}

	for i, stage := range stages {
		ux.StageHeader(i, len(stages), stage.emoji, stage.label)
		st.SetStage(stage.id)
		if err := st.Save(o.ws.OutputsDir()); err != nil {
			o.log.Warn("failed to save run state", zap.Error(err))
		}

		if err := stage.run(); err != nil {
			o.log.Error("stage failed", zap.String("stage", stage.id), zap.Error(err))
			ux.StageFail(i, stage.label, err.Error())
			st.RecordResult(stage.id, false)
			continue
		}
		ux.StageComplete(i, stage.label)
		st.RecordResult(stage.id, true)
	}

	st.Finish()
	if err := st.Save(o.ws.OutputsDir()); err != nil {
		o.log.Warn("failed to save run state", zap.Error(err))
	}

	if st.Status == state.StatusCompleted {
		ux.Success(len(stages))
	} else {
		ux.Partial(st.Succeeded(), len(stages))
	}
	return st, nil
}
