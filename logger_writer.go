package libtrigger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// writerLogger implements the Logger interface using an io.Writer
type writerLogger struct {
	writer io.Writer
	fields map[string]any
}

// NewWriterLogger creates a new logger that writes plain text lines to the provided writer
func NewWriterLogger(writer io.Writer) Logger {
	return &writerLogger{
		writer: writer,
		fields: make(map[string]any),
	}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	newLogger := &writerLogger{
		writer: l.writer,
		fields: make(map[string]any, len(l.fields)+1),
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	newLogger.fields[key] = value
	return newLogger
}

// formatFields renders fields sorted by key so output is stable
func (l *writerLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
	}
	b.WriteString("]")
	return b.String()
}

const (
	levelDebug = "DEBUG"
	levelInfo  = "INFO"
	levelWarn  = "WARN"
	levelError = "ERROR"
)

// write renders one line. A non-empty format selects Sprintf, ln selects Sprintln.
func (l *writerLogger) write(level, format string, ln bool, args []any) {
	var msg string
	switch {
	case format != "":
		msg = fmt.Sprintf(format, args...)
	case ln:
		msg = strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	default:
		msg = fmt.Sprint(args...)
	}

	fmt.Fprintf(l.writer, "[%s] %s%s: %s\n",
		time.Now().Format(time.DateTime), level, l.formatFields(), msg)
}

func (l *writerLogger) Debug(args ...any)                 { l.write(levelDebug, "", false, args) }
func (l *writerLogger) Debugf(format string, args ...any) { l.write(levelDebug, format, false, args) }
func (l *writerLogger) Debugln(args ...any)               { l.write(levelDebug, "", true, args) }
func (l *writerLogger) Info(args ...any)                  { l.write(levelInfo, "", false, args) }
func (l *writerLogger) Infof(format string, args ...any)  { l.write(levelInfo, format, false, args) }
func (l *writerLogger) Infoln(args ...any)                { l.write(levelInfo, "", true, args) }
func (l *writerLogger) Warn(args ...any)                  { l.write(levelWarn, "", false, args) }
func (l *writerLogger) Warnf(format string, args ...any)  { l.write(levelWarn, format, false, args) }
func (l *writerLogger) Warnln(args ...any)                { l.write(levelWarn, "", true, args) }
func (l *writerLogger) Error(args ...any)                 { l.write(levelError, "", false, args) }
func (l *writerLogger) Errorf(format string, args ...any) { l.write(levelError, format, false, args) }
func (l *writerLogger) Errorln(args ...any)               { l.write(levelError, "", true, args) }
