package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	// ErrInvalidLevel возвращается при неизвестном уровне логирования
	ErrInvalidLevel = errors.New("logger: invalid log level")
)

// Logger логгер с уровнями и printf-форматированием
// Пишет в stdout и, если указан файл, дублирует записи в файл
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает логгер; filePath может быть пустым
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		writer io.Writer = os.Stdout
		file   *os.File
	)

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
		}
		writer = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		level: lvl,
		out:   log.New(writer, "", log.LstdFlags),
		file:  file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

// ParseLevel парсит строковый уровень логирования (пустая строка = info)
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) write(level Level, tag string, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}
