package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel mirrors the zap levels used by the helpers below.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

// InitLogger builds the process logger and installs it as zap's global.
// format is "json" (production encoder) or anything else for the console encoder.
func InitLogger(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.TimeKey = "timestamp"
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LogMessage writes one printf-style line tagged with the calling service.
// ERROR and above also bump the error counter.
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	logger := zap.L().WithOptions(zap.AddCallerSkip(2)).With(zap.String("service", service))
	message := fmt.Sprintf(format, args...)

	switch level {
	case DEBUG:
		logger.Debug(message)
	case INFO:
		logger.Info(message)
	case WARN:
		logger.Warn(message)
	case ERROR:
		logger.Error(message)
		RecordError(service, level.String())
	case FATAL:
		RecordError(service, level.String())
		logger.Fatal(message)
	}
}

func Debug(service, format string, args ...interface{}) {
	LogMessage(DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	LogMessage(INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	LogMessage(WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	LogMessage(ERROR, service, format, args...)
}

// Fatal logs and exits the process.
func Fatal(service, format string, args ...interface{}) {
	LogMessage(FATAL, service, format, args...)
}
