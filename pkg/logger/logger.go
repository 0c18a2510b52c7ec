package logger

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"ocrdir/pkg/utils"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes to two sinks at independent thresholds: the console with
// a short "LEVEL - message" format, and an append-mode log file with a
// "timestamp - line - LEVEL - message" format. The process is single
// threaded, so no locking is needed around the file handle.
type Logger struct {
	printLevel LogLevel
	fileLevel  LogLevel
	file       *os.File
}

// New creates a logger from the configured level names and log file path.
// The log file is opened in append mode and created if missing.
func New(fileLevel, printLevel, logFile string) (*Logger, error) {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, fmt.Sprintf("failed to open log file %s", logFile))
	}

	return &Logger{
		printLevel: parseLogLevel(printLevel),
		fileLevel:  parseLogLevel(fileLevel),
		file:       f,
	}, nil
}

// Close closes the log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs debug information
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, "DEBUG", fmt.Sprintf(format, args...))
}

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, "INFO", fmt.Sprintf(format, args...))
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(LevelWarn, "WARNING", fmt.Sprintf(format, args...))
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, "ERROR", fmt.Sprintf(format, args...))
}

// Fatal logs a fatal error to both sinks and exits the program
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.write(LevelError, "FATAL", fmt.Sprintf(format, args...))
	l.Close()
	os.Exit(1)
}

// ProgressAlways prints progress information that should always be shown
// on the console regardless of the configured print level
func (l *Logger) ProgressAlways(emoji, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", emoji, message)
}

// write emits one message to each sink whose threshold it meets
func (l *Logger) write(level LogLevel, name, message string) {
	if level >= l.printLevel {
		fmt.Printf("%s - %s\n", name, message)
	}
	if l.file != nil && level >= l.fileLevel {
		// Line number of the Logger method's caller.
		_, _, line, _ := runtime.Caller(2)
		timestamp := time.Now().Format("2006-01-02 15:04:05,000")
		fmt.Fprintf(l.file, "%s - %d - %s - %s\n", timestamp, line, name, message)
	}
}

// parseLogLevel converts string level to LogLevel
func parseLogLevel(level string) LogLevel {
	switch level {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
