// Package logger printf-логгер поверх log/slog.
// Текстовый формат выводится через tint, json - через slog.JSONHandler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger логгер приложения
type Logger struct {
	log  *slog.Logger
	file *os.File
}

type options struct {
	format string
	writer io.Writer
}

// Option настройка логгера
type Option func(*options)

// WithFormat задаёт формат вывода (text | json)
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = strings.ToLower(format)
	}
}

// WithWriter перенаправляет вывод (используется в тестах)
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New создает логгер. Если filePath пустой - пишет в stdout, иначе дописывает в файл.
func New(filePath, level string, opts ...Option) (*Logger, error) {
	o := &options{format: FormatText}
	for _, opt := range opts {
		opt(o)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	l := &Logger{}
	writer := o.writer
	if writer == nil {
		writer = os.Stdout
		if filePath != "" {
			f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("logger: open %s: %w", filePath, err)
			}
			l.file = f
			writer = f
		}
	}

	var handler slog.Handler
	switch o.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: lvl})
	case FormatText, "":
		handler = tint.NewHandler(writer, &tint.Options{
			Level:      lvl,
			TimeFormat: time.RFC3339,
			NoColor:    l.file != nil || o.writer != nil,
		})
	default:
		return nil, fmt.Errorf("logger: unknown format %q", o.format)
	}

	l.log = slog.New(handler)
	return l, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(slog.LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(slog.LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(slog.LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(slog.LevelError, format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(slog.LevelError, format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл лога (если он открыт)
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) logf(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	l.log.Log(ctx, level, fmt.Sprintf(format, v...))
}
