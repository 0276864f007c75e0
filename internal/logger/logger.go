// Package logger provides a wrapper around logrus for structured logging.
package logger

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewLogger creates a new configured logger instance
func NewLogger(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to info", logLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// JSON in production, colored text everywhere else
	if os.Getenv("ENVIRONMENT") == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	return log
}

// ForRun returns an entry tagged with the pipeline run id and stat type, so
// every line from one run can be grepped together.
func ForRun(log *logrus.Logger, runID uuid.UUID, stat string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"run_id": runID.String(),
		"stat":   stat,
	})
}
