// Package log provides structured logging backed by logrus, persisted to a daily file in the logs directory.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/iro-cli/iro/filesystem"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logger discards everything until Setup enables it.
var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup configures the output file, formatter and level from the global configuration.
// When logs.write is false every log call is a no-op.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = newDiscard()
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
