package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 생성 파이프라인 전역에서 사용하는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 한 줄 JSON 로그의 top-level 키다.
// 배치 로그는 request_id, provider, kind, index 를 싣고
// 폴백 로그는 error_kind 와 error 를, 원격 호출 로그는 model 과 latency_ms 를 더한다.
type Fields map[string]any

// Log 는 전역 로거다. Init 전에도 stdout 에 info 레벨로 쓴다.
var Log Logger = NewLogger("info")

// Init 은 config 의 log.level 로 전역 로거를 교체한다. 빈 값은 info 다.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

func NewLogger(level string) Logger {
	return NewLoggerTo(os.Stdout, level)
}

// NewLoggerTo 는 out 으로 datetime, level, message 와 Fields 만 쓰는 JSON 로거다.
func NewLoggerTo(out io.Writer, level string) Logger {
	maxLevel := slog.LevelByName(level)
	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= maxLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewIOWriterHandler(out, levels)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }
func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }
func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }
func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

// logWithFields 는 error 값을 문자열로 바꾸고 SERVICE_NAME 을 service_name 으로 붙인다.
// 호출자의 map 은 건드리지 않는다.
func logWithFields(level slog.Level, msg string, fields Fields) {
	lg, ok := Log.(*slog.Logger)
	if !ok {
		switch level {
		case slog.DebugLevel:
			Log.Debug(msg)
		case slog.WarnLevel:
			Log.Warn(msg)
		case slog.ErrorLevel:
			Log.Error(msg)
		default:
			Log.Info(msg)
		}
		return
	}

	m := make(slog.M, len(fields)+1)
	for k, v := range fields {
		if err, isErr := v.(error); isErr && err != nil {
			v = err.Error()
		}
		m[k] = v
	}
	if _, set := m["service_name"]; !set {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			m["service_name"] = sn
		}
	}
	lg.WithFields(m).Log(level, msg)
}
