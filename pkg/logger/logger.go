package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a stdout logger. format "text" gives full-timestamp text output,
// anything else JSON. An unparsable level falls back to info.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()
	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetOutput(os.Stdout)
	SetLevel(logger, level)
	return logger
}

func SetLevel(logger *logrus.Logger, level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
}
