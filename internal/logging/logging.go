// Package logging builds the process logger. One logger is constructed per
// invocation and handed to every component; there is no package-level global.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger that writes human-readable lines to both stdout and
// the debug log at logPath. If the log file cannot be opened the logger falls
// back to stdout only and notes the degradation.
func New(logPath string) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	stdout := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zapcore.InfoLevel)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log := zap.New(stdout)
		log.Warn("debug log unavailable, logging to stdout only",
			zap.String("path", logPath), zap.Error(err))
		return log
	}
	file := zapcore.NewCore(enc, zapcore.Lock(f), zapcore.InfoLevel)

	return zap.New(zapcore.NewTee(stdout, file))
}
