// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"

	"event_reminder_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance
var Log = logrus.New()

// file is the rotated log file, nil when logging to stdout only.
var file *lumberjack.Logger

// Init configures the global logger from the application configuration. Output
// goes to stdout and, when LOG_FILE is set, to a size-rotated file as well.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(newOutput(cfg))

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
	Log.SetFormatter(newFormatter(cfg))

	Log.WithFields(logrus.Fields{
		"level":       Log.GetLevel().String(),
		"environment": cfg.Environment,
		"file":        cfg.LogFile,
	}).Info("Logger initialized")
}

func newOutput(cfg *config.AppConfig) io.Writer {
	if cfg.LogFile == "" {
		file = nil
		return os.Stdout
	}
	file = &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}
	return io.MultiWriter(os.Stdout, file)
}

func newFormatter(cfg *config.AppConfig) logrus.Formatter {
	if cfg.Environment == "production" || cfg.Environment == "staging" {
		return &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		}
	}
	// Colour codes would end up in the log file.
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     cfg.LogFile == "",
	}
}

// Close flushes and closes the log file, if any. Later entries go to stdout.
func Close() error {
	if file == nil {
		return nil
	}
	Log.SetOutput(os.Stdout)
	err := file.Close()
	file = nil
	return err
}

// Component returns an entry tagged with the name of the component that logs through it.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
