// Package config loads runtime settings from config.yaml and environment
// variables (PPQSA_* overrides yaml keys, dots replaced with underscores).
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr          string
	DataDir       string
	SQLitePath    string
	AdminCodeHash string
	JWTSecret     string
	Debug         bool
}

// Load reads config.yaml if present; environment variables always win.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix("PPQSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("admin.code_hash", "")
	v.SetDefault("admin.jwt_secret", "ppqsa-dev-secret")
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		Addr:          v.GetString("server.addr"),
		DataDir:       v.GetString("storage.data_dir"),
		SQLitePath:    v.GetString("storage.sqlite_path"),
		AdminCodeHash: v.GetString("admin.code_hash"),
		JWTSecret:     v.GetString("admin.jwt_secret"),
		Debug:         v.GetBool("debug"),
	}, nil
}

// SnapshotsPath is the current-format JSON log file.
func (c Config) SnapshotsPath() string { return filepath.Join(c.DataDir, "snapshots_v1.json") }

// LegacyPath is the old-format log consumed once by the startup migration.
func (c Config) LegacyPath() string { return filepath.Join(c.DataDir, "results_snapshots_v1.json") }

// InvitesPath holds the invite list.
func (c Config) InvitesPath() string { return filepath.Join(c.DataDir, "invites_v1.json") }

// TargetPath holds the admin target score.
func (c Config) TargetPath() string { return filepath.Join(c.DataDir, "target_score24_v1") }
