package adapters

import (
	"io"
	"log"
	"os"
)

// PrintLoggerAdapter implements LoggerAdapter on top of the standard log
// package. Every line carries the level and an "[Amplitude]" tag.
type PrintLoggerAdapter struct {
	level  LogLevel
	logger *log.Logger
}

var _ LoggerAdapter = (*PrintLoggerAdapter)(nil)

// NewPrintLoggerAdapter creates a print logger writing to stderr.
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return NewPrintLoggerAdapterWriter(level, os.Stderr)
}

// NewPrintLoggerAdapterWriter creates a print logger writing to w.
// Unknown levels fall back to LogLevelWarn.
func NewPrintLoggerAdapterWriter(level LogLevel, w io.Writer) *PrintLoggerAdapter {
	if _, ok := levelRank[level]; !ok {
		level = LogLevelWarn
	}
	return &PrintLoggerAdapter{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Level returns the minimum level that is written.
func (p *PrintLoggerAdapter) Level() LogLevel {
	return p.level
}

func (p *PrintLoggerAdapter) shouldLog(level LogLevel) bool {
	return levelRank[level] >= levelRank[p.level]
}

func (p *PrintLoggerAdapter) print(level LogLevel, message string, args []any) {
	if !p.shouldLog(level) {
		return
	}
	p.logger.Printf("["+string(level)+"] [Amplitude] "+message, args...)
}

func (p *PrintLoggerAdapter) Debug(message string, args ...any) {
	p.print(LogLevelDebug, message, args)
}

func (p *PrintLoggerAdapter) Info(message string, args ...any) {
	p.print(LogLevelInfo, message, args)
}

func (p *PrintLoggerAdapter) Warn(message string, args ...any) {
	p.print(LogLevelWarn, message, args)
}

func (p *PrintLoggerAdapter) Error(message string, args ...any) {
	p.print(LogLevelError, message, args)
}
