package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is replaced by InitLogger at startup. Until then it discards everything.
var Log = zap.NewNop()

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// level picks log.level when set, otherwise debug in debug mode and info
// everywhere else.
func level(cfg *config.Config) (zapcore.Level, error) {
	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return zap.InfoLevel, fmt.Errorf("log.level: %w", err)
		}
		return lvl, nil
	}
	if cfg.Server.Mode == "debug" {
		return zap.DebugLevel, nil
	}
	return zap.InfoLevel, nil
}

// New writes JSON lines to file (rotated by lumberjack) and console lines to
// console. Either may be omitted with an empty path or a nil writer.
func New(cfg *config.Config, console io.Writer) (*zap.Logger, error) {
	lvl, err := level(cfg)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if cfg.Log.File != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.Log.File,
				MaxSize:    100,
				MaxBackups: 5,
				MaxAge:     30,
				Compress:   true,
			}),
			lvl,
		))
	}
	if console != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(console),
			lvl,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("program_start", cfg.Calendar.ProgramStartDate)), nil
}

// InitLogger installs the process logger. A bad level falls back to info and
// is reported through the new logger.
func InitLogger(cfg *config.Config) {
	l, err := New(cfg, os.Stdout)
	if err != nil {
		fallback := *cfg
		fallback.Log.Level = ""
		l, _ = New(&fallback, os.Stdout)
		l.Warn("Invalid log level, using default", zap.Error(err))
	}
	Log = l
}
