// Package logger provides structured logging and crash recovery for selfdiscover.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide structured logger. It starts as a no-op so
// packages can log before Initialize runs (and in tests).
var Logger = zap.NewNop().Sugar()

// Options controls how Initialize builds the logger.
type Options struct {
	// JSON switches to production JSON output for machine consumption.
	JSON bool
	// Verbose lowers the level from warn to debug.
	Verbose bool
}

// Initialize replaces Logger according to opts. Logs always go to stderr
// because stdout carries the pipeline transcript.
func Initialize(opts Options) error {
	level := zap.WarnLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	var zapLogger *zap.Logger
	if opts.JSON {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		built, err := config.Build()
		if err != nil {
			return err
		}
		zapLogger = built
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes buffered log entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Logger.Sync()
}
