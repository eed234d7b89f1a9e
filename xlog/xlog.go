package xlog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xtango/lib/infra"
)

const coreKeyIgnored = zapcore.OmitKey

type XLogger interface {
	Named(name string) XLogger
	SetLogLevel(lvl zapcore.Level)
	Sync() error
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	ErrorStack(err error, msg string, fields ...zap.Field)
	Logf(lvl zapcore.Level, format string, args ...any)
}

var _ XLogger = (*xLogger)(nil)

type xLogger struct {
	logger     atomic.Pointer[zap.Logger]
	lvlEnabler zap.AtomicLevel
}

func (l *xLogger) Named(name string) XLogger {
	nl := &xLogger{lvlEnabler: l.lvlEnabler}
	nl.logger.Store(l.logger.Load().Named(name))
	return nl
}

func (l *xLogger) SetLogLevel(lvl zapcore.Level) {
	l.lvlEnabler.SetLevel(lvl)
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	var es *infra.ErrorStack
	if errors.As(err, &es) {
		newFields = append(newFields, zap.String("errStack", fmt.Sprintf("%+v", es)))
	} else if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Load().Log(lvl, fmt.Sprintf(format, args...))
}

type loggerCfg struct {
	level      *zapcore.Level
	lvlEncoder zapcore.LevelEncoder
	tsEncoder  zapcore.TimeEncoder
	ws         zapcore.WriteSyncer
}

func (cfg *loggerCfg) apply() {
	if cfg.level == nil {
		lvl := getLogLevelOrDefault(os.Getenv("XLOG_LVL"))
		cfg.level = &lvl
	}
	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}
	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}
	if cfg.ws == nil {
		// Keep logs off stdout, the shells own it for protocol output.
		cfg.ws = zapcore.Lock(os.Stderr)
	}
}

type XLoggerOption func(*loggerCfg) error

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	cfg.apply()

	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   cfg.lvlEncoder,
		TimeKey:       "ts",
		EncodeTime:    cfg.tsEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}

	xl := &xLogger{lvlEnabler: zap.NewAtomicLevelAt(*cfg.level)}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), cfg.ws, xl.lvlEnabler)
	xl.logger.Store(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return xl
}

func WithXLoggerLevel(level string) XLoggerOption {
	return func(cfg *loggerCfg) error {
		lvl := getLogLevelOrDefault(level)
		cfg.level = &lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

func WithXLoggerWriter(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if ws == nil {
			return infra.NewErrorStack("[XLogger] logger writer is empty")
		}
		cfg.ws = zapcore.Lock(ws)
		return nil
	}
}

func getLogLevelOrDefault(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "INFO":
		return zapcore.InfoLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "DEBUG":
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}
