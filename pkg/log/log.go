// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package log

import (
	"os"

	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
)

// ServiceContext identifies the emitting binary in structured log output.
type ServiceContext struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// Log is the application wide console logger.
var Log = log.WithFields(log.Fields{})

// setup default log level for binaries without initial invocation of log.Init.
func init() {
	logLevelFromEnv()
}

func logLevelFromEnv() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return
	}

	newLevel, err := logrus.ParseLevel(level)
	if err == nil {
		Log.Logger.SetLevel(newLevel)
	}
}

// Init initializes/configures the application-wide logger.
func Init(service, version string, json, verbose bool) {
	Log = log.WithFields(log.Fields{
		"serviceContext": ServiceContext{service, version},
	})

	if json {
		Log.Logger.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyMsg: "message",
			},
		})
	} else {
		Log.Logger.SetFormatter(&logrus.TextFormatter{})
	}

	logLevelFromEnv()

	if verbose {
		Log.Logger.SetLevel(log.DebugLevel)
	}
}

// WithError returns the package logger with an error field set.
func WithError(err error) *logrus.Entry {
	return Log.WithError(err)
}

// WithField returns the package logger with a single field set.
func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}

// WithFields returns the package logger with the given fields set.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

// Info logs at info level on the package logger.
func Info(args ...interface{}) { Log.Info(args...) }

// Infof logs a formatted message at info level on the package logger.
func Infof(format string, args ...interface{}) { Log.Infof(format, args...) }

// Warnf logs a formatted message at warn level on the package logger.
func Warnf(format string, args ...interface{}) { Log.Warnf(format, args...) }

// Error logs at error level on the package logger.
func Error(args ...interface{}) { Log.Error(args...) }
