package ringscene

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger is a Logger over a zap sugared logger. Debug output is
// toggled through an atomic level, so SetDebug is safe from any goroutine.
type DefaultLogger struct {
	level zap.AtomicLevel
	log   *zap.SugaredLogger
}

// NewDefaultLogger builds a console logger writing to outputPaths (stdout when
// empty). A non-empty prefix becomes the logger name.
func NewDefaultLogger(prefix string, debug bool, outputPaths ...string) (*DefaultLogger, error) {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	config := zap.Config{
		Level:            level,
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		logger = logger.Named(prefix)
	}
	return WrapZap(logger, level), nil
}

// WrapZap adapts an existing zap logger. level must be the level enabler the
// logger's core was built with for SetDebug to take effect.
func WrapZap(logger *zap.Logger, level zap.AtomicLevel) *DefaultLogger {
	return &DefaultLogger{level: level, log: logger.Sugar()}
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	if enabled {
		l.level.SetLevel(zapcore.DebugLevel)
		return
	}
	l.level.SetLevel(zapcore.InfoLevel)
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }

// Sync flushes buffered output.
func (l *DefaultLogger) Sync() error { return l.log.Sync() }

// LoggingModule installs a logger as a resource. A preconfigured Logger wins
// over Prefix/Debug/OutputPaths.
type LoggingModule struct {
	Logger      Logger
	Prefix      string
	Debug       bool
	OutputPaths []string
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	logger := m.Logger
	if logger == nil {
		l, err := NewDefaultLogger(m.Prefix, m.Debug, m.OutputPaths...)
		if err != nil {
			panic(err)
		}
		logger = l
	}
	cmd.AddResources(&logger)
}

// Nop logger and App helper accessor

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the installed Logger resource, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	if l, ok := Resource[Logger](app); ok && *l != nil {
		return *l
	}
	return NewNopLogger()
}
