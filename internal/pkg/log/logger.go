/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level defines a log level for logging messages.
type Level int

// Log levels.
const (
	DEBUG   = Level(zapcore.DebugLevel)
	INFO    = Level(zapcore.InfoLevel)
	WARNING = Level(zapcore.WarnLevel)
	ERROR   = Level(zapcore.ErrorLevel)
	PANIC   = Level(zapcore.PanicLevel)
	FATAL   = Level(zapcore.FatalLevel)
)

const defaultLevel = INFO

// Encoding defines the log encoding.
type Encoding = string

// Log encodings.
const (
	Console Encoding = "console"
	JSON    Encoding = "json"
)

// DefaultEncoding is used by loggers that were created without WithEncoding.
var DefaultEncoding = Console //nolint:gochecknoglobals

var registry = &levelRegistry{levels: map[string]Level{}} //nolint:gochecknoglobals

var levelNames = map[string]Level{ //nolint:gochecknoglobals
	"debug":   DEBUG,
	"info":    INFO,
	"warn":    WARNING,
	"warning": WARNING,
	"error":   ERROR,
	"panic":   PANIC,
	"fatal":   FATAL,
}

// String returns string representation of given log level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARN"
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	case FATAL:
		return "FATAL"
	}

	return fmt.Sprintf("Level(%d)", l)
}

// ParseLevel returns the level from the given string. Upper and lower case names are accepted.
func ParseLevel(level string) (Level, error) {
	if level != strings.ToLower(level) && level != strings.ToUpper(level) {
		return ERROR, errors.New("logger: invalid log level")
	}

	l, ok := levelNames[strings.ToLower(level)]
	if !ok {
		return ERROR, errors.New("logger: invalid log level")
	}

	return l, nil
}

// Option is a logger option.
type Option func(o *options)

type options struct {
	encoding Encoding
	stdOut   zapcore.WriteSyncer
	stdErr   zapcore.WriteSyncer
	fields   []zap.Field
}

// WithStdOut sets the output for logs of type DEBUG, INFO, and WARN.
func WithStdOut(stdOut zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdOut = stdOut
	}
}

// WithStdErr sets the output for logs of type ERROR, PANIC, and FATAL.
func WithStdErr(stdErr zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdErr = stdErr
	}
}

// WithFields sets the fields that will be output with every log.
func WithFields(fields ...zap.Field) Option {
	return func(o *options) {
		o.fields = append(o.fields, fields...)
	}
}

// WithEncoding sets the output encoding (console or json).
func WithEncoding(encoding Encoding) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}

// Log is a module scoped zap logger. Its level is looked up on every write so that
// SetSpec takes effect on loggers that already exist.
type Log struct {
	*zap.Logger
	module string
}

// New creates a logger for the given module.
func New(module string, opts ...Option) *Log {
	o := &options{
		encoding: DefaultEncoding,
		stdOut:   os.Stdout,
		stdErr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(o)
	}

	return &Log{
		Logger: newZap(module, o).With(o.fields...),
		module: module,
	}
}

// IsEnabled returns true if given log level is enabled.
func (l *Log) IsEnabled(level Level) bool {
	return registry.enabled(l.module, level)
}

// SetLevel sets the log level for given module.
func SetLevel(module string, level Level) {
	registry.set(module, level)
}

// SetDefaultLevel sets the level used by modules without an explicit level.
func SetDefaultLevel(level Level) {
	registry.set("", level)
}

// GetLevel returns the log level for the given module.
func GetLevel(module string) Level {
	return registry.get(module)
}

// SetSpec sets module levels and the default level from a spec of the form
//
//	module1=level1:module2=level2:defaultLevel
//
// e.g. "issuance-service=debug:redis-store=warn:info".
func SetSpec(spec string) error {
	var (
		defaultLvl *Level
		modules    = map[string]Level{}
	)

	for _, part := range strings.Split(spec, ":") {
		module, lvl, hasModule := strings.Cut(part, "=")
		if !hasModule {
			lvl = module
		}

		level, err := ParseLevel(lvl)
		if err != nil {
			return err
		}

		if hasModule {
			modules[module] = level

			continue
		}

		if defaultLvl != nil {
			return errors.New("multiple default values found")
		}

		defaultLvl = &level
	}

	if defaultLvl == nil {
		SetDefaultLevel(INFO)
	} else {
		SetDefaultLevel(*defaultLvl)
	}

	for module, level := range modules {
		registry.set(module, level)
	}

	return nil
}

// GetSpec returns the current levels in the format accepted by SetSpec.
func GetSpec() string {
	all := registry.all()

	var modules []string

	for module, level := range all {
		if module != "" {
			modules = append(modules, module+"="+level.String())
		}
	}

	sort.Strings(modules)

	def, ok := all[""]
	if !ok {
		def = defaultLevel
	}

	return strings.Join(append(modules, def.String()), ":")
}

type levelRegistry struct {
	mutex  sync.RWMutex
	levels map[string]Level
}

func (r *levelRegistry) get(module string) Level {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if level, ok := r.levels[module]; ok {
		return level
	}

	if level, ok := r.levels[""]; ok {
		return level
	}

	return defaultLevel
}

func (r *levelRegistry) set(module string, level Level) {
	r.mutex.Lock()
	r.levels[module] = level
	r.mutex.Unlock()
}

func (r *levelRegistry) all() map[string]Level {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := make(map[string]Level, len(r.levels))
	for k, v := range r.levels {
		res[k] = v
	}

	return res
}

func (r *levelRegistry) enabled(module string, level Level) bool {
	return level >= r.get(module)
}

func newZap(module string, o *options) *zap.Logger {
	encoder := newEncoder(o.encoding)

	enabler := func(errorStream bool) zap.LevelEnablerFunc {
		return func(lvl zapcore.Level) bool {
			if (lvl >= zapcore.ErrorLevel) != errorStream {
				return false
			}

			return registry.enabled(module, Level(lvl))
		}
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(o.stdErr), enabler(true)),
		zapcore.NewCore(encoder, zapcore.Lock(o.stdOut), enabler(false)),
	)

	return zap.New(core, zap.AddCaller()).Named(module)
}

func newEncoder(encoding Encoding) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(encoding) {
	case JSON:
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder

		return zapcore.NewJSONEncoder(cfg)
	case Console:
		cfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + name + "]")
		}

		return zapcore.NewConsoleEncoder(cfg)
	default:
		panic("unsupported encoding " + encoding)
	}
}
