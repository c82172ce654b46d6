package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// FileLogger implements the domain.Logger interface.
type FileLogger struct {
	logger *zap.SugaredLogger
	closer io.Closer
}

// NewFileLogger creates a logger that appends to logFilePath, creating
// parent directories as needed. The file is rotated once it grows past
// maxSizeMB.
func NewFileLogger(logFilePath string) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// lumberjack opens lazily; surface permission problems now.
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	file.Close()

	rotator := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return newLogger(zapcore.AddSync(rotator), rotator), nil
}

// NewWriterLogger creates a logger on an arbitrary writer.
func NewWriterLogger(w io.Writer) *FileLogger {
	return newLogger(zapcore.AddSync(w), nil)
}

func newLogger(ws zapcore.WriteSyncer, closer io.Closer) *FileLogger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       utcTimeEncoder,
		EncodeLevel:      levelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), ws, zapcore.InfoLevel)
	return &FileLogger{logger: zap.New(core).Sugar(), closer: closer}
}

// utcTimeEncoder writes "2006/01/02 15:04:05" in UTC.
func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006/01/02 15:04:05"))
}

// levelEncoder writes "INFO:", "WARNING:" or "ERROR:".
func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == zapcore.WarnLevel {
		enc.AppendString("WARNING:")
		return
	}
	enc.AppendString(l.CapitalString() + ":")
}

// Info logs an informational message.
func (l *FileLogger) Info(msg string, args ...interface{}) {
	l.logger.Infof(msg, args...)
}

// Warning logs a warning message.
func (l *FileLogger) Warning(msg string, args ...interface{}) {
	l.logger.Warnf(msg, args...)
}

// Error logs an error message.
func (l *FileLogger) Error(msg string, args ...interface{}) {
	l.logger.Errorf(msg, args...)
}

// Log logs a standard operation message.
func (l *FileLogger) Log(msg string) {
	l.logger.Info(msg)
}

// Close flushes buffered entries and releases the log file, if any.
func (l *FileLogger) Close() error {
	if err := l.logger.Sync(); err != nil {
		return err
	}
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(msg string, args ...interface{})    {}
func (NopLogger) Warning(msg string, args ...interface{}) {}
func (NopLogger) Error(msg string, args ...interface{})   {}
func (NopLogger) Log(msg string)                          {}
