package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// StageHeader prints a timestamped stage banner.
func StageHeader(index, total int, emoji, name string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %s%s Étape %d/%d: %s%s\n",
		Dim, timestamp(), Reset, Bold, emoji, index+1, total, name, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// StageComplete prints a stage completion message.
func StageComplete(index int, name string) {
	fmt.Printf("%s[%s]%s  %s✅ Étape %d (%s) réussie%s\n",
		Dim, timestamp(), Reset, Green, index+1, name, Reset)
}

// StageFail prints a stage failure message.
func StageFail(index int, name, errMsg string) {
	fmt.Printf("%s[%s]%s  %s❌ Étape %d (%s) échouée: %s%s\n",
		Dim, timestamp(), Reset, Red, index+1, name, errMsg, Reset)
}

// Success prints the full-ritual success banner.
func Success(total int) {
	fmt.Printf("\n%s[%s]%s  %s%s🎉 RITUEL COMPLET AVEC SUCCÈS (%d/%d étapes)%s\n",
		Dim, timestamp(), Reset, Bold, Green, total, total, Reset)
	fmt.Printf("%s[%s]%s  %sLuxcordia.EXE - Par la Fracture vient la Vue%s\n\n",
		Dim, timestamp(), Reset, Dim, Reset)
}

// Partial prints the partial-ritual warning banner.
func Partial(succeeded, total int) {
	fmt.Printf("\n%s[%s]%s  %s⚠️ RITUEL PARTIEL: %d/%d étapes réussies%s\n\n",
		Dim, timestamp(), Reset, Yellow, succeeded, total, Reset)
}
