package xlog

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

func (lvl logLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelDebug:
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}

func (lvl logLevel) String() string {
	return string(lvl)
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
)

var encoderMap = map[logEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

const coreKeyIgnored = ""

// XLogger is a wrapper logger of the Uber zap logger.
type XLogger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	// IncreaseLogLevel raises or lowers the level concurrently.
	IncreaseLogLevel(level zapcore.Level)
	Level() string
	Sync() error
}

type xLogger struct {
	logger              atomic.Pointer[zap.Logger]
	dynamicLevelEnabler zap.AtomicLevel
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

func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

type loggerCfg struct {
	component string
	level     logLevel
	encoder   logEncoderType
	writer    io.Writer
}

type XLoggerOption func(*loggerCfg)

func WithComponent(name string) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.component = name
	}
}

func WithLogLevel(level logLevel) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.level = level
	}
}

func WithEncoder(encoder logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.encoder = encoder
	}
}

// WithWriter redirects the log output, mainly for tests.
func WithWriter(w io.Writer) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.writer = w
	}
}

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{
		level:   LogLevelInfo,
		encoder: PlainText,
		writer:  os.Stdout,
	}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		TimeKey:       "ts",
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		CallerKey:     coreKeyIgnored,
		FunctionKey:   coreKeyIgnored,
		StacktraceKey: coreKeyIgnored,
	}

	l := &xLogger{
		dynamicLevelEnabler: zap.NewAtomicLevelAt(cfg.level.zapLevel()),
	}
	core := zapcore.NewCore(
		encoderMap[cfg.encoder](encoderCfg),
		zapcore.AddSync(cfg.writer),
		l.dynamicLevelEnabler,
	)
	logger := zap.New(core)
	if cfg.component != "" {
		logger = logger.Named(cfg.component)
	}
	l.logger.Store(logger)
	return l
}
