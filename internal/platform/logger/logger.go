package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields son pares clave/valor extra por línea.
type Fields map[string]any

type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto es stdout.
	Output io.Writer
}

// New crea un logger sobre log.Logger. Las copias hechas con With comparten writer y mutex.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		sink: &sink{
			std: log.New(out, "", 0),
			now: time.Now,
		},
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// Nop descarta todo. Útil en tests y como default cuando no se inyecta logger.
func Nop() Logger { return nopLogger{} }

// OrNop devuelve l, o Nop si l es nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}

type sink struct {
	mu  sync.Mutex
	std *log.Logger
	now func() time.Time
}

type stdLogger struct {
	sink   *sink
	level  Level
	format Format
	base   Fields
}

func (l *stdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(Fields, len(l.base)+len(fields))
	mergeInto(merged, l.base)
	mergeInto(merged, fields)

	return &stdLogger{
		sink:   l.sink,
		level:  l.level,
		format: l.format,
		base:   merged,
	}
}

func (l *stdLogger) Debug(msg string, fields Fields) { l.log(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields Fields)  { l.log(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields Fields)  { l.log(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields Fields) { l.log(Error, msg, fields) }

func (l *stdLogger) log(lvl Level, msg string, fields Fields) {
	if lvl < l.level {
		return
	}

	entry := make(Fields, len(l.base)+len(fields)+3)
	mergeInto(entry, l.base)
	mergeInto(entry, fields)
	entry["ts"] = l.sink.now().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(Fields{"level": lvl.String(), "msg": msg, "log_error": err.Error()})
		}
		line = string(b)
	} else {
		line = formatText(entry)
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.std.Println(line)
}

func mergeInto(dst, src Fields) {
	for k, v := range src {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		dst[k] = v
	}
}

// formatText ordena las keys para salida estable.
func formatText(m Fields) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}

type nopLogger struct{}

func (n nopLogger) With(Fields) Logger { return n }
func (nopLogger) Debug(string, Fields) {}
func (nopLogger) Info(string, Fields)  {}
func (nopLogger) Warn(string, Fields)  {}
func (nopLogger) Error(string, Fields) {}
