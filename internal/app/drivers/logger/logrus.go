package logger

import (
	"backoffice-service/internal/app/config"
	"backoffice-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger of command line tools, where human readable
// output matters more than structured ingestion outside production.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if internalConfig.App.Env == constvars.AppEnvProduction {
		logger.SetFormatter(&logrus.JSONFormatter{})
		return logger
	}

	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)
	return logger
}
