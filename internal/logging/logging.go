package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/config"
)

// SetupLogging builds the service logger and applies the same level and
// formatter to the logrus standard logger.
func SetupLogging(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
	if cfg.Format == "text" {
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	logger := logrus.Logger{
		Formatter: formatter,
		Out:       os.Stdout,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
	}

	logrus.SetFormatter(formatter)
	logrus.SetLevel(level)

	return &logger, nil
}
