// Package observability owns the process-wide structured logger.
//
// Log lines are JSON with ISO-8601 timestamps.  When a log file is
// configured, rotation and retention are handled by lumberjack; with
// tee enabled the same events also go to stdout for interactive runs.
package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	File string
	Tee  bool
}

// NewLogger builds a sugared zap logger and installs it as the global
// default so zap.L() works everywhere after startup.
func NewLogger(opts Options) *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	if opts.File != "" {
		fileSink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileSink),
			zap.InfoLevel,
		))
	}
	if opts.Tee || opts.File == "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		))
	}

	z := zap.New(zapcore.NewTee(cores...)).Sugar()
	zap.ReplaceGlobals(z.Desugar())
	return z
}
