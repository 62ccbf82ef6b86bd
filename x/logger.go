/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes structured build reports. A nil *Logger discards them.
type Logger struct {
	logger *zap.Logger
}

// InitLogger returns a JSON logger writing to path, which zap also accepts
// as "stdout" or "stderr".
func InitLogger(path string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, Wrapf(err, "while opening report %s", path)
	}
	return &Logger{logger: logger}, nil
}

// ReportI logs msg with the key/value pairs of args at info level.
func (l *Logger) ReportI(msg string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Info(msg, fields(args)...)
}

// ReportE is ReportI at error level.
func (l *Logger) ReportE(msg string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Error(msg, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	flds := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		AssertTruef(ok, "report key %v is not a string", args[i])
		flds = append(flds, zap.Any(key, args[i+1]))
	}
	return flds
}

func (l *Logger) Sync() {
	if l == nil {
		return
	}
	_ = l.logger.Sync()
}
