package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var access io.Writer = os.Stdout

// Writer is the sink chosen by the last Init call.
func Writer() io.Writer {
	return access
}

// Init replaces the global zap logger and returns the writer access logs should go to.
// An empty filename keeps everything on stdout.
func Init(mode, filename string) io.Writer {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if mode == "production" {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	if filename == "" {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level)
		zap.ReplaceGlobals(zap.New(core, zap.AddCaller()))
		access = os.Stdout
		return access
	}

	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		zap.S().Errorf("error creating logs directory: %v", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   false,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotating),
			level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	)
	zap.ReplaceGlobals(zap.New(core, zap.AddCaller()))
	access = rotating
	return access
}
