package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"sap-agent/internal/application/port/output"
)

var _ output.LoggerPort = (*Adapter)(nil)

type Config struct {
	Level   string
	Dir     string
	RunName string
}

func DefaultConfig(runName string) Config {
	return Config{
		Level:   "info",
		Dir:     "log",
		RunName: runName,
	}
}

// Adapter backs LoggerPort with a zap tee: a JSON file core (rotated by
// lumberjack, one file per run) and a console core on stderr for warnings
// and above, so tool chatter stays out of the interactive session.
type Adapter struct {
	sugar *zap.SugaredLogger
	root  *zap.Logger
}

func NewAdapter(cfg Config) (*Adapter, error) {
	if cfg.Dir == "" {
		cfg.Dir = "log"
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02_15-04-05"), sanitize(cfg.RunName))
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, filename),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	})
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.WarnLevel,
	)

	root := zap.New(zapcore.NewTee(fileCore, consoleCore))
	return &Adapter{sugar: root.Sugar(), root: root}, nil
}

func (l *Adapter) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *Adapter) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *Adapter) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *Adapter) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

func (l *Adapter) WithField(key string, value any) output.LoggerPort {
	return &Adapter{sugar: l.sugar.With(key, value), root: l.root}
}

func (l *Adapter) Close() error {
	err := l.root.Sync()
	if err != nil && strings.Contains(err.Error(), "invalid argument") {
		// Syncing stderr fails on some platforms; nothing is lost.
		return nil
	}
	return err
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, s)
	s = strings.Trim(s, "_")
	if s == "" {
		return "run"
	}
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}
