// Package log provides the process-wide structured logger.
//
// It is a thin wrapper around zap: handlers and middleware use the
// package-level sugared helpers, while components that want a raw
// *zap.Logger (request logging, the auth security log) use NewDefaultLogger.
package log

import (
	stdlog "log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var (
	zlog  = NewDefaultLogger()
	sugar = zlog.Sugar()

	Debug  = sugar.Debug
	Debugf = sugar.Debugf
	Info   = sugar.Info
	Infof  = sugar.Infof
	Warn   = sugar.Warn
	Warnf  = sugar.Warnf
	Error  = sugar.Error
	Errorf = sugar.Errorf
	Fatal  = sugar.Fatal
	Fatalf = sugar.Fatalf

	With = sugar.With
)

// Zap returns the underlying logger for components that take *zap.Logger.
func Zap() *zap.Logger { return zlog }

// Sync flushes any buffered log entries. Called on shutdown.
func Sync() error { return zlog.Sync() }

// NewDefaultLogger builds a zap logger configured from the LOG_LEVEL and
// LOG_ENCODING environment variables (json by default, console optional).
func NewDefaultLogger() *zap.Logger {
	logLevel := parseToAtomicLevel(os.Getenv("LOG_LEVEL"))
	stdoutSink, closeOut, err := zap.Open("stdout")
	if err != nil {
		stdlog.Fatal(err)
	}
	stderrSink, _, err := zap.Open("stderr")
	if err != nil {
		closeOut()
		stdlog.Fatal(err)
	}
	encoderConfig := zapcore.EncoderConfig{
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(time.RFC3339),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if strings.EqualFold(os.Getenv("LOG_ENCODING"), "console") {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	logger := zap.New(zapcore.NewCore(encoder, stdoutSink, logLevel),
		zap.ErrorOutput(stderrSink),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	zap.ReplaceGlobals(logger)
	return logger
}

func parseToAtomicLevel(level string) zap.AtomicLevel {
	logLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	switch strings.ToUpper(level) {
	case LevelDebug:
		logLevel = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case LevelWarn:
		logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case LevelError:
		logLevel = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	return logLevel
}
