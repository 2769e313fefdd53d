// Package logger configures the shared logrus logger used by the dataset
// loader and the vixcal CLI. The calendar and frame packages stay log-free.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields for callers.
type Fields = logrus.Fields

var global = New()

// New builds a logger with its level taken from the LOG_LEVEL environment
// variable (default info).
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	if lvl, err := logrus.ParseLevel(levelStr); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Get returns the shared logger.
func Get() *logrus.Logger {
	return global
}
