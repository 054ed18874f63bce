// Package logger provides the shared application logger.
// It writes to stderr so that command output on stdout stays machine readable.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = &logrus.Logger{
	Out:       os.Stderr,
	Formatter: new(logrus.JSONFormatter),
	Level:     logrus.InfoLevel,
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level and exits.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
