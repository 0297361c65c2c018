package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	busyTimeout := cfg.Database.BusyTimeout
	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}
	dsn := storage.DSN(cfg.Database.Path, busyTimeout)

	preMigrationVersion, dirty, err := storage.MigrationStatus(dsn)
	if err != nil {
		logrus.WithError(err).Fatal("storage.MigrationStatus.preMigrationVersion")
		return
	}
	if dirty {
		logrus.WithField("version", preMigrationVersion).Fatal("database is dirty, fix the failed migration first")
		return
	}

	if err := storage.RunMigrations(dsn); err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	postMigrationVersion, _, err := storage.MigrationStatus(dsn)
	if err != nil {
		logrus.WithError(err).Fatal("storage.MigrationStatus.postMigrationVersion")
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":                 cfg.Database.Path,
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
