package ux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/fractura/internal/state"
)

// stageOrder lists the stages with their display names, in pipeline order.
var stageOrder = []struct {
	ID    string
	Label string
}{
	{state.StageExtractingSymbols, "extraction des symboles"},
	{state.StageExtractingMantras, "extraction des mantras"},
	{state.StageGeneratingChant, "génération du chant"},
}

// RenderStatus prints the last recorded run and the current output artifacts.
func RenderStatus(st *state.RunState, outputsDir string) {
	if st == nil {
		fmt.Printf("%sNo ritual has been recorded yet.%s\n", Dim, Reset)
		return
	}

	fmt.Printf("%sRun:%s     %s\n", Bold, Reset, st.RunID)
	fmt.Printf("%sStarted:%s %s\n", Bold, Reset, st.StartedAt.Format("2006-01-02 15:04:05"))
	switch st.Status {
	case state.StatusCompleted:
		fmt.Printf("%sState:%s   %s%scompleted%s\n", Bold, Reset, Green, Bold, Reset)
	case state.StatusPartial:
		fmt.Printf("%sState:%s   %s%spartial (%d/3)%s\n", Bold, Reset, Yellow, Bold, st.Succeeded(), Reset)
	default:
		fmt.Printf("%sState:%s   %s (%s)\n", Bold, Reset, st.Status, st.Stage)
	}

	fmt.Printf("\n%sStages:%s\n", Bold, Reset)
	for i, stage := range stageOrder {
		ok, recorded := st.StageResults[stage.ID]
		switch {
		case !recorded:
			fmt.Printf("  %s%d%s  %-26s %s(not run)%s\n", Dim, i+1, Reset, stage.Label, Dim, Reset)
		case ok:
			fmt.Printf("  %s%d%s  %-26s %sdone%s\n", Dim, i+1, Reset, stage.Label, Green, Reset)
		default:
			fmt.Printf("  %s%d%s  %-26s %sfailed%s\n", Dim, i+1, Reset, stage.Label, Red, Reset)
		}
	}

	fmt.Printf("\n%sArtifacts:%s\n", Bold, Reset)
	entries, err := os.ReadDir(outputsDir)
	if err != nil || len(entries) == 0 {
		fmt.Printf("  %s(none)%s\n", Dim, Reset)
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			fmt.Printf("  %s\n", filepath.Join(outputsDir, e.Name()))
		}
	}
	fmt.Println()
}
