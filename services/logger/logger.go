package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

// NewDefaultLogger tạo một instance mới của DefaultLogger, ghi ra stdout
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(level, os.Stdout)
}

// NewLogger writes to w with date, time and caller prefixes.
func NewLogger(level Level, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// NewFileLogger appends to path, creating it when missing. Output also goes
// to stdout.
func NewFileLogger(level Level, path string) (*DefaultLogger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(level, io.MultiWriter(os.Stdout, f)), f, nil
}

// ParseLevel maps "debug", "info", "warn" and "error"; anything else is info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.out.Output(2, "[INFO] "+fmt.Sprintf(format, v...))
	}
}

// Warn log cảnh báo
func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.out.Output(2, "[WARN] "+fmt.Sprintf(format, v...))
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.out.Output(2, "[ERROR] "+fmt.Sprintf(format, v...))
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.out.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
	}
}

// Nop discards everything. Used by tests.
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
