package logger

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is a zap sink that turns error level JSON entries into Sentry events.
type SentryHook struct {
	appZone string
	appName string
	l       *Logger
}

// sentryEntry mirrors the keys written by Logger.Error.
type sentryEntry struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func NewSentryHook(appZone, appName, dsn string, isDebug bool) (*SentryHook, error) {
	if dsn == "" {
		return nil, errors.New("sentry: empty DSN")
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {
		return nil, errors.Wrap(err, "sentry init")
	}
	return &SentryHook{
		appZone: appZone,
		appName: appName,
	}, nil
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel, zapcore.DPanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

// event decodes one JSON log line. It returns nil for lines below error level.
func (h *SentryHook) event(p []byte) (*sentry.Event, error) {
	var t sentryEntry
	if err := json.Unmarshal(p, &t); err != nil {
		return nil, errors.Wrap(err, "[SentryHook] json.Unmarshal data")
	}
	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		return nil, errors.Wrap(err, "[SentryHook] parse zap level")
	}
	if level < zapcore.ErrorLevel || t.Message == "" {
		return nil, nil
	}

	timestamp, _ := time.ParseInLocation(timeLayout, t.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Extra["TimeStamp"] = t.Timestamp
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event, nil
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	event, err := h.event(p)
	switch {
	case err != nil:
		// Warning level never reaches this hook again.
		if h.l != nil {
			h.l.Warning(err.Error())
		} else {
			log.Println(err.Error())
		}
	case event != nil:
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

func (h *SentryHook) Flush() {
	sentry.Flush(_sentryFlushTimeout)
}

func (h *SentryHook) SetLogger(logger *Logger) {
	if logger != nil {
		h.l = logger
	}
}
