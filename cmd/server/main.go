package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/api"
	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/config"
	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	snapshots, cleanup, err := openSnapshotStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("open snapshot store")
	}
	defer cleanup()

	// One-shot legacy import; a non-empty current log makes this a no-op.
	migrated, err := store.MigrateLegacy(snapshots, cfg.LegacyPath())
	if err != nil {
		logrus.WithError(err).Fatal("migrate legacy snapshots")
	}
	if migrated > 0 {
		logrus.WithField("records", migrated).Info("migrated legacy snapshot log")
	}

	router := api.NewRouter(
		snapshots,
		store.NewInviteFile(cfg.InvitesPath()),
		store.NewSettingsFile(cfg.TargetPath()),
		cfg.AdminCodeHash,
		cfg.JWTSecret,
	)

	logrus.WithField("addr", cfg.Addr).Info("ppqsa server listening")
	if err := http.ListenAndServe(cfg.Addr, router.Handler()); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}

func openSnapshotStore(cfg config.Config) (store.Store, func(), error) {
	if cfg.SQLitePath != "" {
		s, err := store.OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logrus.WithField("path", cfg.SQLitePath).Debug("using sqlite snapshot store")
		return s, func() { s.Close() }, nil
	}
	logrus.WithField("path", cfg.SnapshotsPath()).Debug("using file snapshot store")
	return store.NewFileStore(cfg.SnapshotsPath()), func() {}, nil
}
