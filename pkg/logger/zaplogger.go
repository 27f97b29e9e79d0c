package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02T15-04-05.000"

type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
	sentry  *SentryHook
}

// Options configures New. Empty Level means debug, empty Format means json.
type Options struct {
	AppName   string
	AppEnv    string
	Level     string
	Format    string
	SentryDSN string
	Writers   []io.Writer
}

// NewZapLogger returns a debug level JSON logger writing to the given writers,
// or to stdout when none are given.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	l, _ := New(Options{AppName: appName, Writers: writers})
	return l
}

func New(opts Options) (*Logger, error) {
	level := zapcore.DebugLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder(timeLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console":
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var multiWriters []zapcore.WriteSyncer
	if len(opts.Writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range opts.Writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.NewMultiWriteSyncer(multiWriters...)), level)

	lg := &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
	}

	// Sentry always receives JSON so the hook can decode the entry.
	if opts.SentryDSN != "" {
		hook, err := NewSentryHook(opts.AppEnv, opts.AppName, opts.SentryDSN, false)
		if err != nil {
			return nil, err
		}
		hook.SetLogger(lg)
		lg.sentry = hook
		core = zapcore.NewTee(core, zapcore.NewCore(
			zapcore.NewJSONEncoder(cfg),
			zapcore.AddSync(hook),
			zapcore.ErrorLevel,
		))
	}

	lg.l = zap.New(core)

	return lg, nil
}

func (l *Logger) Stop() (err error) {
	if l.sentry != nil {
		l.sentry.Flush()
	}
	if err = l.l.Sync(); err != nil {
		return
	}
	return
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	if err == nil {
		return
	}
	file, line, funcName := getRuntimeParams(2)
	zapFields := []zapcore.Field{}
	if len(fields) > 0 {
		zapFields = mapToZapFields(fields[0])
	}
	l.l.WithOptions(zap.Fields(zapFields...)).Error(
		err.Error(),
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(zapcore.InfoLevel, msg, fields...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.log(zapcore.WarnLevel, msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(zapcore.DebugLevel, msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.log(zapcore.FatalLevel, msg, fields...)
}

func (l *Logger) log(level zapcore.Level, msg string, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams(3)
	zapFields := []zapcore.Field{}
	if len(fields) > 0 {
		zapFields = mapToZapFields(fields[0])
	}
	if ce := l.l.WithOptions(zap.Fields(zapFields...)).Check(level, msg); ce != nil {
		ce.Write(
			zap.String("app_zone", l.appEnv),
			zap.String("app_name", l.appName),
			zap.Any("caller_file", file),
			zap.Any("caller_line", line),
			zap.Any("caller_func", funcName))
	}
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

// getRuntimeParams reports the caller skip frames above itself.
func getRuntimeParams(skip int) (file string, line int, funcName string) {
	var ok bool
	var pc uintptr
	pc, file, line, ok = runtime.Caller(skip)
	if !ok {
		file = "not_defined"
		line = 0
		funcName = "not_defined"
	} else {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return

}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
