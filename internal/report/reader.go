package report

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
)

// skipPrefixes marks header, separator, and footer lines added by Writer.
var skipPrefixes = []string{
	"🔮",
	"🗝️",
	"=",
	"---",
	"Extraction générée",
	"Total:",
}

// Reader recovers the content lines from a previously written report.
type Reader struct {
	log *zap.Logger
}

// NewReader returns a Reader.
func NewReader(log *zap.Logger) *Reader {
	return &Reader{log: log}
}

// Read parses a report back into its content lines. A missing or unreadable
// file yields an empty list with a logged warning; the caller decides whether
// that matters.
func (r *Reader) Read(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		r.log.Warn("report unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isArtifact(line) {
			continue
		}
		lines = append(lines, stripNumbering(line))
	}
	if err := scanner.Err(); err != nil {
		r.log.Warn("report unreadable", zap.String("path", path), zap.Error(err))
		return nil
	}
	r.log.Info("report read", zap.String("path", path), zap.Int("entries", len(lines)))
	return lines
}

func isArtifact(line string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// stripNumbering removes a leading "<digits>. " prefix added by Writer.
func stripNumbering(line string) string {
	prefix, rest, found := strings.Cut(line, ". ")
	if !found || prefix == "" {
		return line
	}
	for _, c := range prefix {
		if c < '0' || c > '9' {
			return line
		}
	}
	return rest
}
